package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/api/middleware"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

// Analyzer runs one question through the protected pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest, identity models.Identity) (models.Insight, error)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	analyzer Analyzer
	logger   *zerolog.Logger
}

func NewHandler(analyzer Analyzer, logger *zerolog.Logger) *Handler {
	return &Handler{analyzer: analyzer, logger: logger}
}

// POST /api/v1/insights
// Body: AnalyzeRequest
// Returns: Insight, or a typed rejection with a client-facing status.
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	var analyzeReq models.AnalyzeRequest
	if err := req.ReadEntity(&analyzeReq); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	identity := identityFromRequest(req)
	requestID := uuid.NewString()

	h.logger.Info().
		Str("request_id", requestID).
		Str("identity", identity.ID).
		Str("tenant", identity.TenantID).
		Msg("start analysis")

	ctx := req.Request.Context()
	insight, err := h.analyzer.Analyze(ctx, analyzeReq, identity)
	if err != nil {
		var rejection *analysis.RejectionError
		if errors.As(err, &rejection) {
			h.writeRejection(resp, requestID, rejection.Result)
			return
		}
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("analysis failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("confidence", string(insight.Confidence)).
		Str("provider", insight.ProviderName).
		Msg("analysis complete")

	_ = resp.WriteHeaderAndEntity(http.StatusOK, insight)
}

// writeRejection maps guardrail reasons to distinct statuses: structural
// problems are the caller's to fix, policy blocks are forbidden, and budget
// exhaustion is retryable.
func (h *Handler) writeRejection(resp *restful.Response, requestID string, result models.PreProcessResult) {
	h.logger.Info().
		Str("request_id", requestID).
		Str("reason", string(result.Reason)).
		Msg("request rejected by guardrails")

	status := http.StatusBadRequest
	switch result.Reason {
	case models.ReasonInjection, models.ReasonPII:
		status = http.StatusForbidden
	case models.ReasonRateLimited:
		status = http.StatusTooManyRequests
	}

	_ = resp.WriteHeaderAndEntity(status, middleware.ErrorResponse{
		Error:  result.Message,
		Reason: string(result.Reason),
	})
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// identityFromRequest reads the principal resolved by the upstream auth
// layer. Authentication itself is outside this service.
func identityFromRequest(req *restful.Request) models.Identity {
	identity := models.Identity{
		ID:         req.HeaderParameter("X-User-ID"),
		Role:       req.HeaderParameter("X-User-Role"),
		TenantID:   req.HeaderParameter("X-Tenant-ID"),
		TenantType: req.HeaderParameter("X-Tenant-Type"),
	}
	if identity.ID == "" {
		identity.ID = "anonymous"
	}
	return identity
}
