package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/settlement-analytics/internal/config"
	"github.com/TemirB/settlement-analytics/internal/domain"
)

//go:generate mockgen -source internal/kafka/publisher.go -destination=internal/kafka/publisher_mock_test.go -package=kafka

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

const EventTagAdded = "tag_added"

// TagEvent is the message value written for every successful tag insert.
type TagEvent struct {
	Type    string        `json:"type"`
	Address string        `json:"address"`
	Tag     string        `json:"tag"`
	Tags    domain.TagSet `json:"tags"`
	At      time.Time     `json:"at"`
}

// Publisher writes tag events keyed by address, so all events of one address
// land on one partition in order.
type Publisher struct {
	w      writer
	topic  string
	now    func() time.Time
	logger *zap.Logger
}

func NewPublisher(cfg config.Kafka, logger *zap.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
	return newPublisher(w, cfg.Topic, logger)
}

func newPublisher(w writer, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		w:      w,
		topic:  topic,
		now:    time.Now,
		logger: logger,
	}
}

func (p *Publisher) TagAdded(ctx context.Context, row domain.UserTags, tag string) error {
	value, err := json.Marshal(TagEvent{
		Type:    EventTagAdded,
		Address: row.Address,
		Tag:     tag,
		Tags:    row.Tags,
		At:      p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal tag event: %w", err)
	}

	if err := p.w.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(row.Address),
		Value: value,
	}); err != nil {
		return fmt.Errorf("write %s: %w", p.topic, err)
	}

	p.logger.Debug("tag event published",
		zap.String("topic", p.topic),
		zap.String("address", row.Address),
		zap.Int("value_bytes", len(value)),
	)
	return nil
}

func (p *Publisher) Close() error { return p.w.Close() }
