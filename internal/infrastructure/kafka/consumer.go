package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one message. A nil return acknowledges the message; a
// non-nil return also acknowledges it after logging, so a poison message is
// dropped instead of being redelivered forever.
type Handler func(ctx context.Context, message []byte) error

// Consumer reads one durable queue with a single in-flight message.
type Consumer struct {
	reader *kafka.Reader
	logger *zap.Logger
}

func NewConsumer(brokers []string, queue, groupID string, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    queue,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	logger.Info("kafka consumer initialized",
		zap.String("queue", queue),
		zap.String("group_id", groupID),
		zap.Strings("brokers", brokers))

	return &Consumer{reader: reader, logger: logger}
}

// Run blocks until ctx is cancelled, handing each message to handler in
// arrival order. The offset is committed after handling regardless of the
// handler outcome; only fetch/commit failures against the broker are fatal
// to the loop.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetching message: %w", err)
		}

		if err := handler(ctx, m.Value); err != nil {
			c.logger.Error("message handler failed, dropping message",
				zap.String("queue", m.Topic),
				zap.Int64("offset", m.Offset),
				zap.Error(err))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("committing offset: %w", err)
		}
	}
}

func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return fmt.Errorf("closing kafka consumer: %w", err)
	}
	c.logger.Info("kafka consumer closed")
	return nil
}
