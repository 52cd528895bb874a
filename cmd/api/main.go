package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/api"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/api/middleware"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/setup"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// API
	handler := api.NewHandler(deps.Orchestrator, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Starting Insight API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
