package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type CreateOutboxMsgParams struct {
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

type ListUnprocessedOutboxMsgsParams struct {
	BatchSize int32
}

type OutboxMsg struct {
	ID           uuid.UUID
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
	CreatedAt    time.Time
}

type BulkUpdateOutboxMsgsItem struct {
	ID    uuid.UUID
	Error *string
}

type BulkUpdateOutboxMsgsParams struct {
	Items []BulkUpdateOutboxMsgsItem
}

type OutboxMsgRepository interface {
	WithDB(db db.DB) OutboxMsgRepository
	CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error
	// ListUnprocessedOutboxMsgs locks the returned rows until the surrounding
	// transaction ends, so it must run inside WithTx.
	ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]OutboxMsg, error)
	BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error
	DeleteProcessedOutboxMsgs(ctx context.Context, processedBefore time.Time) (int64, error)
}

type outboxMsgRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewOutboxMsgRepository(db db.DB, queries sqlc.Queries) OutboxMsgRepository {
	return &outboxMsgRepository{
		db:      db,
		queries: queries,
	}
}

func (r outboxMsgRepository) WithDB(db db.DB) OutboxMsgRepository {
	return &outboxMsgRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r outboxMsgRepository) CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error {
	var headers *json.RawMessage
	if len(params.Headers) > 0 {
		b, err := json.Marshal(params.Headers)
		if err != nil {
			return fmt.Errorf("marshal headers: %w", err)
		}
		raw := json.RawMessage(b)
		headers = &raw
	}

	if err := r.queries.OutboxMsgCreate(ctx, r.db, sqlc.OutboxMsgCreateParams{
		Topic:        params.Topic,
		Headers:      headers,
		Payload:      params.Payload,
		PartitionKey: params.PartitionKey,
		CreatedAt:    time.Now(),
	}); err != nil {
		return fmt.Errorf("outbox msg create: %w", err)
	}

	return nil
}

func (r outboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]OutboxMsg, error) {
	rows, err := r.queries.OutboxMsgListUnprocessed(ctx, r.db, params.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("outbox msg list unprocessed: %w", err)
	}

	msgs := make([]OutboxMsg, 0, len(rows))
	for _, row := range rows {
		headers := map[string]string{}
		if row.Headers != nil {
			if err := json.Unmarshal(*row.Headers, &headers); err != nil {
				return nil, fmt.Errorf("unmarshal headers of outbox msg %s: %w", row.ID, err)
			}
		}

		msgs = append(msgs, OutboxMsg{
			ID:           row.ID,
			Topic:        row.Topic,
			Headers:      headers,
			Payload:      row.Payload,
			PartitionKey: row.PartitionKey,
			CreatedAt:    row.CreatedAt,
		})
	}

	return msgs, nil
}

func (r outboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error {
	if len(params.Items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(params.Items))
	errs := make([]*string, len(params.Items))
	for i, item := range params.Items {
		ids[i] = item.ID
		errs[i] = item.Error
	}

	if _, err := r.db.Exec(ctx, `
		UPDATE outbox_messages AS o
		SET
			processed_at = NOW(),
			error        = e.error
		FROM (
			SELECT UNNEST(@ids::uuid[])  AS id,
			       UNNEST(@errors::text[]) AS error
		) AS e
		WHERE o.id = e.id;
	`, pgx.NamedArgs{
		"ids":    ids,
		"errors": errs,
	}); err != nil {
		return fmt.Errorf("outbox msg bulk update: %w", err)
	}

	return nil
}

func (r outboxMsgRepository) DeleteProcessedOutboxMsgs(ctx context.Context, processedBefore time.Time) (int64, error) {
	deleted, err := r.queries.OutboxMsgDeleteProcessedBefore(ctx, r.db, &processedBefore)
	if err != nil {
		return 0, fmt.Errorf("outbox msg delete processed: %w", err)
	}

	return deleted, nil
}
