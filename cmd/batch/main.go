package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/batch"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/setup"
)

// Runs the protected pipeline over an NDJSON backlog of questions and
// writes one insight (or rejection) per line to stdout.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	_ = godotenv.Load()

	inputPath := flag.String("input", "", "NDJSON file of analyze events")
	flag.Parse()
	if *inputPath == "" {
		log.Fatal().Msg("-input is required")
	}

	file, err := os.Open(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("Failed to open input file")
	}
	defer file.Close()

	ctx := context.Background()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	encoder := json.NewEncoder(os.Stdout)
	reader := batch.NewReader(file, &logger)

	for parsed := range reader.ReadAll(ctx) {
		if parsed.Error != nil {
			log.Error().Err(parsed.Error).Msg("Skipping unparseable line")
			continue
		}

		event := parsed.Event
		insight, err := deps.Orchestrator.Analyze(ctx, event.Request, event.Identity)
		if err != nil {
			var rejection *analysis.RejectionError
			if errors.As(err, &rejection) {
				log.Warn().
					Str("event_id", event.EventID).
					Str("reason", string(rejection.Result.Reason)).
					Msg("Question rejected")
				continue
			}
			log.Error().Err(err).Str("event_id", event.EventID).Msg("Analysis failed")
			continue
		}

		if err := encoder.Encode(insight); err != nil {
			log.Error().Err(err).Msg("Failed to write insight")
		}
	}
}
