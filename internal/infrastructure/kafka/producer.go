package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes messages onto durable queues. It is the write half of
// the broker abstraction the payment protocol depends on.
type Producer interface {
	Publish(ctx context.Context, queue string, message []byte) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewProducer(brokers []string, logger *zap.Logger) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("kafka producer initialized", zap.Strings("brokers", brokers))
	return &kafkaProducer{writer: writer, logger: logger}
}

func (p *kafkaProducer) Publish(ctx context.Context, queue string, message []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: queue,
		Value: message,
	})
	if err != nil {
		p.logger.Error("failed to publish message", zap.String("queue", queue), zap.Error(err))
		return fmt.Errorf("publishing to %s: %w", queue, err)
	}

	p.logger.Debug("message published", zap.String("queue", queue))
	return nil
}

func (p *kafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("closing kafka producer: %w", err)
	}
	p.logger.Info("kafka producer closed")
	return nil
}
