package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/observe"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/search"
)

// Guardrails is the pre/post protection surface around the model call.
type Guardrails interface {
	PreProcess(ctx context.Context, question string, identity models.Identity) models.PreProcessResult
	PostProcess(result *llm.AnalysisResult, question string, dataPoints models.DataPoints, provider string) models.PostProcessResult
	HandleError(err error, question string, provider string) models.Insight
}

// Grounding estimates factual support of a summary against its context.
type Grounding interface {
	Check(contextText, summary string) models.GroundingResult
}

// RejectionError signals a guardrail rejection. The boundary layer maps the
// typed reason to a client-facing status instead of a generic server error.
type RejectionError struct {
	Result models.PreProcessResult
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("request rejected: %s", e.Result.Reason)
}

// Orchestrator runs one question through the full protected pipeline:
// guardrails, context fetch, resilient model call, grounding check, output
// validation.
type Orchestrator struct {
	guardrails Guardrails
	searchers  []search.Searcher
	redactor   search.Redactor
	model      llm.Client
	grounding  Grounding
	recorder   observe.Recorder
	logger     *zerolog.Logger
}

func NewOrchestrator(
	guardrails Guardrails,
	searchers []search.Searcher,
	redactor search.Redactor,
	model llm.Client,
	grounding Grounding,
	recorder observe.Recorder,
	logger *zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		guardrails: guardrails,
		searchers:  searchers,
		redactor:   redactor,
		model:      model,
		grounding:  grounding,
		recorder:   recorder,
		logger:     logger,
	}
}

// Analyze answers one question. Guardrail rejections come back as a
// *RejectionError; every other failure below this boundary is converted
// into a fallback insight with a nil error.
func (o *Orchestrator) Analyze(ctx context.Context, req models.AnalyzeRequest, identity models.Identity) (models.Insight, error) {
	pre := o.guardrails.PreProcess(ctx, req.Question, identity)
	if !pre.Allowed {
		return models.Insight{}, &RejectionError{Result: pre}
	}
	question := pre.SanitizedQuestion

	records, counts := o.fetchRecords(ctx, req, identity)
	contextText := o.buildContext(records)
	dataPoints := models.DataPoints{RecordsAnalyzedByKind: counts}

	result, err := o.model.Analyze(ctx, llm.AnalysisRequest{
		Question: question,
		Context:  contextText,
	})
	if err != nil {
		return o.guardrails.HandleError(err, question, o.model.Name()), nil
	}

	grounding := o.grounding.Check(contextText, result.Summary)
	if !grounding.Grounded {
		// Advisory only: logged and counted for audit, never blocks.
		o.logger.Warn().
			Float64("score", grounding.Score).
			Str("reason", grounding.Reason).
			Msg("summary weakly grounded in context")
		o.recorder.Record(observe.EventGroundingLow, map[string]string{
			"identity": identity.ID,
			"score":    fmt.Sprintf("%.2f", grounding.Score),
		})
	}

	post := o.guardrails.PostProcess(result, question, dataPoints, o.model.Name())
	return post.Insight, nil
}

// fetchRecords queries the search collaborators in parallel. A failing
// collaborator contributes zero records; the pipeline still answers from
// whatever evidence it has.
func (o *Orchestrator) fetchRecords(ctx context.Context, req models.AnalyzeRequest, identity models.Identity) ([]search.Record, map[string]int) {
	criteria := search.Criteria{
		Query:         req.Question,
		LocationFocus: req.LocationFocus,
		Limit:         req.ResultLimit,
	}

	type fetched struct {
		kind    string
		records []search.Record
	}
	results := make(chan fetched, len(o.searchers))
	var wg sync.WaitGroup

	for _, s := range o.searchers {
		wg.Add(1)
		go func(s search.Searcher) {
			defer wg.Done()
			records, err := s.Search(ctx, criteria, identity)
			if err != nil {
				o.logger.Error().Err(err).Str("kind", s.Kind()).Msg("record fetch failed")
				results <- fetched{kind: s.Kind()}
				return
			}
			results <- fetched{kind: s.Kind(), records: records}
		}(s)
	}

	wg.Wait()
	close(results)

	var all []search.Record
	counts := make(map[string]int, len(o.searchers))
	for res := range results {
		counts[res.kind] = len(res.records)
		all = append(all, res.records...)
	}
	return all, counts
}

// buildContext flattens record summaries into the redacted context block
// sent to the model.
func (o *Orchestrator) buildContext(records []search.Record) string {
	if len(records) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString("- [")
		sb.WriteString(r.Kind)
		sb.WriteString("] ")
		sb.WriteString(r.Summary)
		sb.WriteString("\n")
	}
	return o.redactor.Redact(sb.String())
}
