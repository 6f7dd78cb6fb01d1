package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
)

// Service consumes catalog events and records every change in the log.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handlers := map[string]mq.HandlerFunc{
		TopicProductCreated: decode(s.handleProductChanged),
		TopicProductUpdated: decode(s.handleProductChanged),
		TopicProductDeleted: decode(s.handleProductDeleted),
	}

	for _, topic := range Topics {
		if err := s.mqConsumer.RegisterHandler(topic, handlers[topic]); err != nil {
			return nil, fmt.Errorf("register %s handler: %w", topic, err)
		}
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

func (s *Service) handleProductChanged(ctx context.Context, topic string, ev ProductChangedEvent) error {
	s.logger.InfoContext(ctx, "catalog product changed",
		slog.String("topic", topic),
		slog.Int64("product_id", ev.ProductID),
		slog.String("name", ev.Name),
		slog.String("price", ev.Price.StringFixed(2)),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}

func (s *Service) handleProductDeleted(ctx context.Context, topic string, ev ProductDeletedEvent) error {
	s.logger.InfoContext(ctx, "catalog product deleted",
		slog.String("topic", topic),
		slog.Int64("product_id", ev.ProductID),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}

func decode[T any](fn func(ctx context.Context, topic string, ev T) error) mq.HandlerFunc {
	return func(ctx context.Context, topic string, payload []byte) error {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := fn(ctx, topic, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}
}
