package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/api/middleware"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/insights").
			To(handler.Analyze).
			Doc("Answer a business question over indexed records").
			Metadata(restfulspec.KeyOpenAPITags, []string{"insights"}).
			Reads(models.AnalyzeRequest{}).
			Writes(models.Insight{}).
			Returns(200, "OK", models.Insight{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(403, "Blocked", middleware.ErrorResponse{}).
			Returns(429, "Rate Limited", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)

	openapi := restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwagger,
	})
	container.Add(openapi)
}

func enrichSwagger(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Insight API",
			Description: "Guarded question answering over indexed records",
			Version:     "1.0.0",
		},
	}
}
