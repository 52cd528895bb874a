package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type Client struct {
	Client      *bedrockruntime.Client
	ModelID     string
	MaxTokens   int
	Temperature float64
}

func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("bedrock model ID is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &Client{
		Client:      bedrockruntime.NewFromConfig(cfg),
		ModelID:     modelID,
		MaxTokens:   1024,
		Temperature: 0.0,
	}, nil
}

func (c *Client) Name() string {
	return "bedrock/" + c.ModelID
}
