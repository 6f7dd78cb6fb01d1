package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

// fakeDB runs transactional functions against itself.
type fakeDB struct {
	db.DB
	txCount int
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	f.txCount++
	return txFunc(f)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) WithDB(db.DB) repository.ProductRepository {
	return m
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, params repository.ListProductsParams) ([]model.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOutboxMsgRepository struct {
	mock.Mock
}

func (m *MockOutboxMsgRepository) WithDB(db.DB) repository.OutboxMsgRepository {
	return m
}

func (m *MockOutboxMsgRepository) CreateOutboxMsg(ctx context.Context, params repository.CreateOutboxMsgParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockOutboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, params repository.ListUnprocessedOutboxMsgsParams) ([]repository.OutboxMsg, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]repository.OutboxMsg), args.Error(1)
}

func (m *MockOutboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, params repository.BulkUpdateOutboxMsgsParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockOutboxMsgRepository) DeleteProcessedOutboxMsgs(ctx context.Context, processedBefore time.Time) (int64, error) {
	args := m.Called(ctx, processedBefore)
	return args.Get(0).(int64), args.Error(1)
}
