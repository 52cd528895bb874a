package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultSystemPrompt instructs the model to answer strictly from the
// supplied context and in the structured shape the pipeline validates.
const DefaultSystemPrompt = `You are a business analyst answering questions about operational records.
Use only the provided context. Respond with a single JSON object:
{"summary": "...", "confidence": "high|medium|low", "reasoning": "..."}
Keep the summary factual and grounded in the context. Do not include any other text.`

// BuildUserPrompt assembles the user-turn content for a provider call.
func BuildUserPrompt(request AnalysisRequest) string {
	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(request.Question)
	sb.WriteString("\n\nContext:\n")
	if request.Context == "" {
		sb.WriteString("(no matching records)")
	} else {
		sb.WriteString(request.Context)
	}
	return sb.String()
}

// ParseAnalysis decodes the model's JSON answer, tolerating a markdown code
// fence around it.
func ParseAnalysis(content string) (*AnalysisResult, error) {
	content = stripMarkdownCodeBlock(content)

	var result AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to decode model answer: %w", err)
	}
	return &result, nil
}

func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
