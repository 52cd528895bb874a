package setup

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/breaker"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/config"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/grounding"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/guardrails"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm/bedrock"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm/openai"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/observe"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/ratelimit"
	redisconn "github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/redis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/redact"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/search"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/search/opensearch"
)

// Config is the environment-level deployment configuration. Pipeline policy
// (rules, thresholds) lives in the YAML file loaded by internal/config.
type Config struct {
	Port     string
	LogLevel string

	DefaultProvider string
	AWSRegion       string
	ClaudeModelID   string
	OpenAIKey       string
	OpenAIModelID   string

	OpenSearchAddresses []string
	MembersIndex        string
	ClaimsIndex         string

	RedisAddr     string
	RedisPassword string
	StreamName    string
	StreamGroup   string
}

type Dependencies struct {
	Orchestrator *analysis.Orchestrator
	Logger       *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("INSIGHT_API_PORT", "18080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DefaultProvider: getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", ""),

		OpenSearchAddresses: strings.Split(getEnv("OPENSEARCH_ADDRESSES", "http://localhost:9200"), ","),
		MembersIndex:        getEnv("OPENSEARCH_MEMBERS_INDEX", "members"),
		ClaimsIndex:         getEnv("OPENSEARCH_CLAIMS_INDEX", "claims"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StreamName:    getEnv("ANALYZE_STREAM", "analyze-requests"),
		StreamGroup:   getEnv("ANALYZE_STREAM_GROUP", "insight-agent"),
	}
}

// Wire assembles the full protected pipeline from configuration.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	pipelineCfg, err := config.LoadPipelineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}

	rules, err := guardrails.CompileRules(pipelineCfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile guardrail rules: %w", err)
	}

	recorder := observe.NewLogRecorder(logger)

	limiter, err := createLimiter(ctx, cfg, pipelineCfg)
	if err != nil {
		return nil, err
	}

	guard := guardrails.NewOrchestrator(
		guardrails.NewInputValidator(pipelineCfg.Guardrails.MinQuestionLength),
		guardrails.NewInjectionDetector(rules),
		guardrails.NewPIIScanner(rules),
		limiter,
		guardrails.NewOutputValidator(pipelineCfg.Guardrails.MinSummaryLength),
		recorder,
		logger,
	)

	modelClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	resilient := breaker.New(modelClient, breaker.Config{
		Timeout:                  pipelineCfg.Breaker.Timeout.Std(),
		ErrorThresholdPercentage: pipelineCfg.Breaker.ErrorThresholdPercentage,
		ResetTimeout:             pipelineCfg.Breaker.ResetTimeout.Std(),
		VolumeThreshold:          pipelineCfg.Breaker.VolumeThreshold,
	}, recorder, logger)

	searchers, err := createSearchers(cfg)
	if err != nil {
		return nil, err
	}

	orchestrator := analysis.NewOrchestrator(
		guard,
		searchers,
		redact.New(),
		resilient,
		grounding.NewVerifier(pipelineCfg.Grounding.Threshold),
		recorder,
		logger,
	)

	return &Dependencies{
		Orchestrator: orchestrator,
		Logger:       logger,
	}, nil
}

func createLimiter(ctx context.Context, cfg *Config, pipelineCfg *config.PipelineConfig) (ratelimit.Limiter, error) {
	limitCfg := ratelimit.Config{
		Window:      pipelineCfg.RateLimit.Window.Std(),
		MaxRequests: pipelineCfg.RateLimit.MaxRequests,
	}

	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(limitCfg), nil
	}

	client, err := redisconn.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to connect rate-limit store: %w", err)
	}
	return ratelimit.NewRedisLimiter(client, limitCfg), nil
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.Client, error) {
	switch provider {
	case "openai":
		return openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	case "bedrock", "":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", provider)
	}
}

func createSearchers(cfg *Config) ([]search.Searcher, error) {
	members, err := opensearch.NewSearcher(cfg.OpenSearchAddresses, cfg.MembersIndex, "member")
	if err != nil {
		return nil, fmt.Errorf("failed to create members searcher: %w", err)
	}
	claims, err := opensearch.NewSearcher(cfg.OpenSearchAddresses, cfg.ClaimsIndex, "claim")
	if err != nil {
		return nil, fmt.Errorf("failed to create claims searcher: %w", err)
	}
	return []search.Searcher{members, claims}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return value
}
