package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	redisconn "github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/redis"
	streamredis "github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/stream/redis"
)

type Config struct {
	Provider    string // redis for now; kafka and sqs are candidates
	RedisConfig *streamredis.StreamConfig
}

func NewConsumer(
	ctx context.Context,
	cfg *Config,
	orchestrator *analysis.Orchestrator,
	logger *zerolog.Logger,
) (Consumer, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redisconn.Connect(ctx, cfg.RedisConfig.RedisAddr, "", 5)
		if err != nil {
			return nil, err
		}

		return streamredis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			orchestrator,
			logger,
		), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
