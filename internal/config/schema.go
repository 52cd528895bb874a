package config

import (
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/guardrails"
)

// PipelineConfig is the YAML-configurable part of the protective pipeline:
// pattern rules and the thresholds around them. Environment variables handle
// deployment concerns; this file handles policy.
type PipelineConfig struct {
	Guardrails GuardrailSettings    `yaml:"guardrails"`
	Rules      []guardrails.RawRule `yaml:"rules"`
	Grounding  GroundingSettings    `yaml:"grounding"`
	RateLimit  RateLimitSettings    `yaml:"rate_limit"`
	Breaker    BreakerSettings      `yaml:"breaker"`
}

type GuardrailSettings struct {
	MinQuestionLength int `yaml:"min_question_length"`
	MinSummaryLength  int `yaml:"min_summary_length"`
}

type GroundingSettings struct {
	Threshold float64 `yaml:"threshold"`
}

type RateLimitSettings struct {
	Window      Duration `yaml:"window"`
	MaxRequests int      `yaml:"max_requests"`
}

type BreakerSettings struct {
	Timeout                  Duration `yaml:"timeout"`
	ErrorThresholdPercentage int      `yaml:"error_threshold_percentage"`
	ResetTimeout             Duration `yaml:"reset_timeout"`
	VolumeThreshold          int      `yaml:"volume_threshold"`
}
