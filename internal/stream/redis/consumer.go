package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

// Consumer drains queued analysis questions from a Redis stream and runs
// each through the protected pipeline. Guardrail rejections are terminal
// for the event; there is no caller to resubmit, so they are logged and
// acked.
type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	orchestrator *analysis.Orchestrator
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, streamName string, groupID string, consumerName string, orchestrator *analysis.Orchestrator, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       streamName,
		groupID:      groupID,
		consumerName: consumerName,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	defer c.ack(ctx, msg.ID)

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("message_id", msg.ID).Msg("stream message has no payload field")
		return
	}

	var event models.AnalyzeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to decode analyze event")
		return
	}

	insight, err := c.orchestrator.Analyze(ctx, event.Request, event.Identity)
	if err != nil {
		var rejection *analysis.RejectionError
		if errors.As(err, &rejection) {
			c.logger.Warn().
				Str("event_id", event.EventID).
				Str("reason", string(rejection.Result.Reason)).
				Msg("queued question rejected by guardrails")
			return
		}
		c.logger.Error().Err(err).Str("event_id", event.EventID).Msg("analysis failed")
		return
	}

	c.logger.Info().
		Str("event_id", event.EventID).
		Str("confidence", string(insight.Confidence)).
		Msg("queued analysis complete")
}

func (c *Consumer) ack(ctx context.Context, messageID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, messageID).Err(); err != nil {
		c.logger.Error().Err(err).Str("message_id", messageID).Msg("failed to ack message")
	}
}
