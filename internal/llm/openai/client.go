package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
)

// Client invokes any OpenAI-compatible chat completion endpoint.
type Client struct {
	client      *openai.Client
	ModelID     string
	MaxTokens   int
	Temperature float32
}

func NewClient(apiKey string, modelID string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if modelID == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	return &Client{
		client:      openai.NewClient(apiKey),
		ModelID:     modelID,
		MaxTokens:   1024,
		Temperature: 0.0,
	}, nil
}

func (c *Client) Name() string {
	return "openai/" + c.ModelID
}

func (c *Client) Analyze(ctx context.Context, request llm.AnalysisRequest) (*llm.AnalysisResult, error) {
	system := request.SystemPrompt
	if system == "" {
		system = llm.DefaultSystemPrompt
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.ModelID,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: llm.BuildUserPrompt(request)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return llm.ParseAnalysis(resp.Choices[0].Message.Content)
}
