// Package kafka publishes application review events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/domain"
)

// ReviewEvent is the payload of the application.reviewed topic.
type ReviewEvent struct {
	ApplicationID uuid.UUID                `json:"application_id"`
	CustomerID    uuid.UUID                `json:"customer_id"`
	Type          domain.ApplicationType   `json:"type"`
	Decision      domain.ApplicationStatus `json:"decision"`
	ReviewedBy    uuid.UUID                `json:"reviewed_by"`
	ApplicantID   uuid.UUID                `json:"applicant_id"`
	ReviewedAt    time.Time                `json:"reviewed_at"`
}

// NewReviewEvent builds the event for a reviewed application.
func NewReviewEvent(a *domain.Application) ReviewEvent {
	ev := ReviewEvent{
		ApplicationID: a.ID,
		CustomerID:    a.CustomerID,
		Type:          a.Type,
		Decision:      a.Status,
		ApplicantID:   a.CreatedBy,
	}
	if a.ReviewedBy != nil {
		ev.ReviewedBy = *a.ReviewedBy
	}
	if a.ReviewedAt != nil {
		ev.ReviewedAt = *a.ReviewedAt
	}
	return ev
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes review events keyed by application ID.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
	log     *slog.Logger
}

// NewPublisher creates a publisher for the configured brokers and topic.
func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.BrokerList()...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           cfg.WriteTimeout,
	}
	return &Publisher{
		writer:  w,
		timeout: cfg.WriteTimeout,
		log:     logger.With("adapter", "kafka"),
	}
}

// PublishReview sends ev. Callers treat failures as best-effort.
func (p *Publisher) PublishReview(ctx context.Context, ev ReviewEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal review event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{Key: []byte(ev.ApplicationID.String()), Value: data}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish review event %s: %w", ev.ApplicationID, err)
	}

	p.log.DebugContext(ctx, "review event published",
		slog.String("application_id", ev.ApplicationID.String()),
		slog.String("decision", ev.Decision.String()),
	)
	return nil
}

// Close flushes pending writes.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Noop discards events. It is used when no brokers are configured.
type Noop struct{}

func (Noop) PublishReview(context.Context, ReviewEvent) error { return nil }

func (Noop) Close() error { return nil }
