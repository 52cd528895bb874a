package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
)

var anthropicVersion = "bedrock-2023-05-31"

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Analyze sends the question and redacted context to Claude via Bedrock and
// decodes the structured answer.
func (c *Client) Analyze(ctx context.Context, request llm.AnalysisRequest) (*llm.AnalysisResult, error) {
	system := request.SystemPrompt
	if system == "" {
		system = llm.DefaultSystemPrompt
	}

	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        c.MaxTokens,
		Temperature:      c.Temperature,
		System:           system,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: llm.BuildUserPrompt(request),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.ModelID,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke claude model: %w", err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bedrock response: %w", err)
	}

	var content string
	if len(response.Content) > 0 {
		content = response.Content[0].Text
	}

	return llm.ParseAnalysis(content)
}
