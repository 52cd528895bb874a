package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/setup"
	setuplogger "github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/setup/logger"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/stream"
	streamredis "github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/stream/redis"
)

func main() {
	// Structured JSON logs; this worker runs headless.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	logger := setuplogger.New(cfg.LogLevel)
	log.Logger = logger

	if cfg.RedisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR is required for the streaming consumer")
	}

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	hostname, _ := os.Hostname()
	consumer, err := stream.NewConsumer(ctx, &stream.Config{
		Provider: "redis",
		RedisConfig: &streamredis.StreamConfig{
			RedisAddr:    cfg.RedisAddr,
			Stream:       cfg.StreamName,
			Group:        cfg.StreamGroup,
			ConsumerName: hostname,
		},
	}, deps.Orchestrator, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up consumer group")
	}

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Consumer failed")
	}
	log.Info().Msg("Consumer stopped")
}
