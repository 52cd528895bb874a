package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

// ParsedEvent is one line of a batch file: either a decoded event or the
// parse error for that line.
type ParsedEvent struct {
	Event models.AnalyzeEvent
	Line  int
	Error error
}

// Reader streams analyze events out of an NDJSON file, one JSON object per
// line, for offline runs over a question backlog.
type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{source: source, logger: logger}
}

// ReadAll emits every line on the returned channel and closes it at EOF or
// when the context is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan ParsedEvent {
	out := make(chan ParsedEvent)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			var event models.AnalyzeEvent
			parsed := ParsedEvent{Line: line}
			if err := json.Unmarshal([]byte(text), &event); err != nil {
				parsed.Error = fmt.Errorf("line %d: %w", line, err)
			} else {
				parsed.Event = event
			}

			select {
			case out <- parsed:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("batch read failed")
		}
	}()

	return out
}
