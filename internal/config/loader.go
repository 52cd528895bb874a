package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/guardrails"
	"gopkg.in/yaml.v3"
)

// LoadPipelineConfig reads the pipeline policy file. When the file does not
// exist the built-in defaults are used, so a bare deployment still carries
// the full rule table.
func LoadPipelineConfig() (*PipelineConfig, error) {
	path := os.Getenv("PIPELINE_CONFIG_PATH")
	if path == "" {
		path = "configs/pipeline.yaml"
	}

	var cfg PipelineConfig

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("unable to read pipeline config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unable to parse pipeline config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PipelineConfig) {
	if len(cfg.Rules) == 0 {
		cfg.Rules = guardrails.DefaultRules()
	}
	if cfg.Guardrails.MinQuestionLength == 0 {
		cfg.Guardrails.MinQuestionLength = 3
	}
	if cfg.Guardrails.MinSummaryLength == 0 {
		cfg.Guardrails.MinSummaryLength = 10
	}
	if cfg.Grounding.Threshold == 0 {
		cfg.Grounding.Threshold = 0.3
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = Duration(time.Minute)
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = 10
	}
	if cfg.Breaker.Timeout == 0 {
		cfg.Breaker.Timeout = Duration(30 * time.Second)
	}
	if cfg.Breaker.ErrorThresholdPercentage == 0 {
		cfg.Breaker.ErrorThresholdPercentage = 50
	}
	if cfg.Breaker.ResetTimeout == 0 {
		cfg.Breaker.ResetTimeout = Duration(30 * time.Second)
	}
	if cfg.Breaker.VolumeThreshold == 0 {
		cfg.Breaker.VolumeThreshold = 3
	}
}

func (c *PipelineConfig) Validate() error {
	if c.Guardrails.MinQuestionLength < 1 {
		return fmt.Errorf("min_question_length must be positive")
	}
	if c.Grounding.Threshold < 0 || c.Grounding.Threshold > 1 {
		return fmt.Errorf("grounding threshold must be in [0,1]")
	}
	if c.Breaker.ErrorThresholdPercentage < 1 || c.Breaker.ErrorThresholdPercentage > 100 {
		return fmt.Errorf("error_threshold_percentage must be in [1,100]")
	}
	for _, r := range c.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("rule with category %q has an empty pattern", r.Category)
		}
	}
	return nil
}
