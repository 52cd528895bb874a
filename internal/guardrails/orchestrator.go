package guardrails

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/observe"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/ratelimit"
)

const fallbackSummary = "The analysis could not be completed reliably. Please try again or rephrase the question."

// Orchestrator sequences the guardrail checks around a model call. Checks
// run cheapest first: structural validation, then pattern matching, then the
// shared-state rate limiter, short-circuiting at the first failure.
type Orchestrator struct {
	validator *InputValidator
	detector  *InjectionDetector
	scanner   *PIIScanner
	limiter   ratelimit.Limiter
	output    *OutputValidator
	recorder  observe.Recorder
	logger    *zerolog.Logger
}

func NewOrchestrator(
	validator *InputValidator,
	detector *InjectionDetector,
	scanner *PIIScanner,
	limiter ratelimit.Limiter,
	output *OutputValidator,
	recorder observe.Recorder,
	logger *zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		validator: validator,
		detector:  detector,
		scanner:   scanner,
		limiter:   limiter,
		output:    output,
		recorder:  recorder,
		logger:    logger,
	}
}

// PreProcess runs the inbound guardrail chain. A question never reaches the
// model unless the returned result has Allowed set.
func (o *Orchestrator) PreProcess(ctx context.Context, question string, identity models.Identity) models.PreProcessResult {
	validation := o.validator.Validate(question)
	if !validation.Valid {
		o.recorder.Record(observe.EventRejected, map[string]string{
			"reason":   string(validation.Reason),
			"identity": identity.ID,
		})
		return models.PreProcessResult{Reason: validation.Reason, Message: validation.Message}
	}

	sanitized := validation.Sanitized

	if detection := o.detector.Detect(sanitized); detection.Matched {
		o.logger.Warn().
			Str("identity", identity.ID).
			Str("category", string(detection.Category)).
			Str("rule", detection.Description).
			Msg("question blocked: injection attempt")
		o.recorder.Record(observe.EventBlocked, map[string]string{
			"category": string(detection.Category),
			"identity": identity.ID,
		})
		return models.PreProcessResult{
			Reason:  models.ReasonInjection,
			Message: "question contains disallowed instructions",
		}
	}

	if detection := o.scanner.Scan(sanitized); detection.Matched {
		o.logger.Warn().
			Str("identity", identity.ID).
			Str("category", string(detection.Category)).
			Msg("question blocked: sensitive identifier")
		o.recorder.Record(observe.EventBlocked, map[string]string{
			"category": string(detection.Category),
			"identity": identity.ID,
		})
		return models.PreProcessResult{
			Reason:  models.ReasonPII,
			Message: "question contains a sensitive identifier; remove it and retry",
		}
	}

	allowed, err := o.limiter.Allow(ctx, identity.ID)
	if err != nil {
		// Budget state is unavailable; failing open here would let an
		// outage bypass the quota, so the request is rejected.
		o.logger.Error().Err(err).Str("identity", identity.ID).Msg("rate limit check failed")
		return models.PreProcessResult{
			Reason:  models.ReasonRateLimited,
			Message: "request budget unavailable, try again later",
		}
	}
	if !allowed {
		o.recorder.Record(observe.EventRateLimited, map[string]string{"identity": identity.ID})
		return models.PreProcessResult{
			Reason:  models.ReasonRateLimited,
			Message: "request budget exceeded for this window",
		}
	}

	return models.PreProcessResult{Allowed: true, SanitizedQuestion: sanitized}
}

// PostProcess validates the model result. Invalid output is replaced by a
// generated low-confidence insight rather than propagated; that substitution
// is recorded as a fallback outcome, distinct from a hard failure.
func (o *Orchestrator) PostProcess(result *llm.AnalysisResult, question string, dataPoints models.DataPoints, provider string) models.PostProcessResult {
	verdict := o.output.Validate(result)
	if !verdict.Valid {
		o.logger.Warn().Str("reason", verdict.Reason).Msg("model output rejected, substituting fallback")
		o.recorder.Record(observe.EventFallback, map[string]string{"reason": verdict.Reason})
		return models.PostProcessResult{
			Insight: o.fallbackInsight(question, dataPoints, provider),
		}
	}

	return models.PostProcessResult{
		Valid: true,
		Insight: models.Insight{
			Question:     question,
			Summary:      result.Summary,
			Confidence:   verdict.Confidence,
			Reasoning:    result.Reasoning,
			DataPoints:   dataPoints,
			GeneratedAt:  time.Now().UTC(),
			ProviderName: provider,
		},
	}
}

// HandleError converts a model-call failure into a fixed low-confidence
// insight with zero record counts. The caller never sees a raw error.
func (o *Orchestrator) HandleError(err error, question string, provider string) models.Insight {
	o.logger.Error().Err(err).Msg("model call failed, returning fallback insight")
	o.recorder.Record(observe.EventFallback, map[string]string{"reason": "provider_error"})
	return o.fallbackInsight(question, models.DataPoints{RecordsAnalyzedByKind: map[string]int{}}, provider)
}

func (o *Orchestrator) fallbackInsight(question string, dataPoints models.DataPoints, provider string) models.Insight {
	if dataPoints.RecordsAnalyzedByKind == nil {
		dataPoints.RecordsAnalyzedByKind = map[string]int{}
	}
	return models.Insight{
		Question:     question,
		Summary:      fallbackSummary,
		Confidence:   models.ConfidenceLow,
		DataPoints:   dataPoints,
		GeneratedAt:  time.Now().UTC(),
		ProviderName: provider,
	}
}
