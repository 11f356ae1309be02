// Package broadcaster drains the durable outbox to Kafka. Delivery is
// at-least-once: a record is marked SENT before the publish attempt and
// ACKED only after the broker confirms, so a crash in between replays it.
package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"callistonft/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      zerolog.Logger
}

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
	log zerolog.Logger,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

// Start launches the drain loop.
func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info().Str("topic", b.topic).Msg("broadcaster started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(seq uint64, sub uint32, rec outbox.Record) error {
		if err := b.outbox.MarkSent(seq, sub); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(keyOf(seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// Leave it SENT; the next pass retries.
			b.log.Warn().Err(err).Uint64("seq", seq).Msg("publish failed")
			return nil
		}

		return b.outbox.MarkAcked(seq, sub)
	})
	if err != nil {
		b.log.Error().Err(err).Msg("outbox drain failed")
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

// keyOf keeps one mutation's events in one partition, in order.
func keyOf(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}
