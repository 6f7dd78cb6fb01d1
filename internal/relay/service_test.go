package relay_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/internal/relay"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

type fakeDB struct {
	db.DB
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(f)
}

type MockOutboxMsgRepository struct {
	mock.Mock
}

func (m *MockOutboxMsgRepository) WithDB(db.DB) repository.OutboxMsgRepository { return m }

func (m *MockOutboxMsgRepository) CreateOutboxMsg(ctx context.Context, params repository.CreateOutboxMsgParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *MockOutboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, params repository.ListUnprocessedOutboxMsgsParams) ([]repository.OutboxMsg, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]repository.OutboxMsg), args.Error(1)
}

func (m *MockOutboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, params repository.BulkUpdateOutboxMsgsParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *MockOutboxMsgRepository) DeleteProcessedOutboxMsgs(ctx context.Context, processedBefore time.Time) (int64, error) {
	args := m.Called(ctx, processedBefore)
	return args.Get(0).(int64), args.Error(1)
}

type fakeProducer struct {
	mu       sync.Mutex
	produced []mq.ProduceMsg
	failOn   string
}

func (p *fakeProducer) Produce(_ context.Context, msg mq.ProduceMsg) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.Topic == p.failOn {
		return errors.New("broker unavailable")
	}
	p.produced = append(p.produced, msg)
	return nil
}

func TestRelayBatch(t *testing.T) {
	ctx := context.Background()
	cfg := config.Relay{BatchSize: 10, Interval: time.Hour}

	okID, failID := uuid.New(), uuid.New()
	msgs := []repository.OutboxMsg{
		{ID: okID, Topic: "catalog.product.created", Payload: []byte(`{}`), PartitionKey: ptr.New("1")},
		{ID: failID, Topic: "catalog.product.deleted", Payload: []byte(`{}`), PartitionKey: ptr.New("2")},
	}

	t.Run("Should mark produced and failed messages", func(t *testing.T) {
		repo := new(MockOutboxMsgRepository)
		producer := &fakeProducer{failOn: "catalog.product.deleted"}

		repo.On("ListUnprocessedOutboxMsgs", mock.Anything, repository.ListUnprocessedOutboxMsgsParams{BatchSize: 10}).
			Return(msgs, nil).Once()
		repo.On("BulkUpdateOutboxMsgs", mock.Anything, mock.MatchedBy(func(p repository.BulkUpdateOutboxMsgsParams) bool {
			if len(p.Items) != 2 {
				return false
			}
			for _, item := range p.Items {
				switch item.ID {
				case okID:
					if item.Error != nil {
						return false
					}
				case failID:
					if item.Error == nil || *item.Error == "" {
						return false
					}
				default:
					return false
				}
			}
			return true
		})).Return(nil).Once()

		svc := relay.NewService(cfg, log.Discard(), &fakeDB{}, repo, producer)

		handled, err := svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, handled)
		require.Len(t, producer.produced, 1)
		assert.Equal(t, "catalog.product.created", producer.produced[0].Topic)
		repo.AssertExpectations(t)
	})

	t.Run("Should do nothing on empty outbox", func(t *testing.T) {
		repo := new(MockOutboxMsgRepository)
		repo.On("ListUnprocessedOutboxMsgs", mock.Anything, mock.Anything).
			Return([]repository.OutboxMsg{}, nil).Once()

		svc := relay.NewService(cfg, log.Discard(), &fakeDB{}, repo, &fakeProducer{})

		handled, err := svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, handled)
		repo.AssertNotCalled(t, "BulkUpdateOutboxMsgs", mock.Anything, mock.Anything)
	})

	t.Run("Should surface list errors", func(t *testing.T) {
		repo := new(MockOutboxMsgRepository)
		repo.On("ListUnprocessedOutboxMsgs", mock.Anything, mock.Anything).
			Return([]repository.OutboxMsg(nil), errors.New("timeout")).Once()

		svc := relay.NewService(cfg, log.Discard(), &fakeDB{}, repo, &fakeProducer{})

		_, err := svc.RelayBatch(ctx)
		assert.ErrorContains(t, err, "timeout")
	})
}

func TestRunAndStop(t *testing.T) {
	repo := new(MockOutboxMsgRepository)
	polled := make(chan struct{}, 1)
	repo.On("ListUnprocessedOutboxMsgs", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case polled <- struct{}{}:
			default:
			}
		}).
		Return([]repository.OutboxMsg{}, nil)

	svc := relay.NewService(config.Relay{BatchSize: 1, Interval: 10 * time.Millisecond}, log.Discard(), &fakeDB{}, repo, &fakeProducer{})
	cleanup := svc.Run(context.Background())

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not poll the outbox")
	}

	done := make(chan struct{})
	go func() {
		cleanup()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(6 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestRunWithZeroConfigUsesDefaults(t *testing.T) {
	repo := new(MockOutboxMsgRepository)
	polled := make(chan struct{}, 1)
	repo.On("ListUnprocessedOutboxMsgs", mock.Anything, mock.MatchedBy(func(p repository.ListUnprocessedOutboxMsgsParams) bool {
		return p.BatchSize == 100
	})).
		Run(func(mock.Arguments) {
			select {
			case polled <- struct{}{}:
			default:
			}
		}).
		Return([]repository.OutboxMsg{}, nil)

	svc := relay.NewService(config.Relay{}, log.Discard(), &fakeDB{}, repo, &fakeProducer{})

	var cleanup relay.CleanupFunc
	require.NotPanics(t, func() { cleanup = svc.Run(context.Background()) })
	defer cleanup()

	select {
	case <-polled:
	case <-time.After(3 * time.Second):
		t.Fatal("relay did not poll the outbox with the default batch size")
	}
}
