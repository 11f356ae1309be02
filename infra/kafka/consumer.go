package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Consumer reads catalog feed commands (mint/burn) from the collaborator
// topic. Thin wrapper so jobs don't depend on the client directly.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  group,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		}),
	}
}

// Read blocks for the next message; commit happens on the next Read in
// group mode, which is fine for an idempotent feed.
func (c *Consumer) Read(ctx context.Context) (kafka.Message, error) {
	return c.reader.ReadMessage(ctx)
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
