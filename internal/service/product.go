package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/event"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/pkg/outbox"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type CreateProductParams struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"price"`
	ImageURL    *string         `json:"imageUrl" validate:"omitempty,max=500"`
}

type UpdateProductParams struct {
	ID          int64           `json:"id" validate:"gte=1"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"price"`
	ImageURL    *string         `json:"imageUrl" validate:"omitempty,max=500"`
}

type ListProductsParams struct {
	Search *string `json:"search" validate:"omitempty,max=200"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductServiceOptions struct {
	// PublishEvents writes a catalog event to the outbox with every mutation.
	PublishEvents bool
}

type productService struct {
	db            db.DB
	validator     validator.Validator
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
	opts          ProductServiceOptions
	now           func() time.Time
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
	opts ProductServiceOptions,
) ProductService {
	return &productService{
		db:            db,
		validator:     validator,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
		opts:          opts,
		now:           time.Now,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := s.validateTrimmed(&params, params.trim); err != nil {
		return model.Product{}, fmt.Errorf("validate params: %w", err)
	}

	now := s.now()
	product := model.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		ImageURL:    params.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		created, err := s.productRepo.
			WithDB(db).
			CreateProduct(ctx, product)
		if err != nil {
			return fmt.Errorf("product repository create product: %w", err)
		}
		product = created

		return s.publish(ctx, db, event.TopicProductCreated, product.ID, event.NewProductChangedEvent(product))
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error) {
	if params.Search != nil {
		params.Search = ptr.NilIfZero(strings.TrimSpace(*params.Search))
	}

	if err := s.validator.Validate(params); err != nil {
		return nil, fmt.Errorf("validate params: %w", err)
	}

	products, err := s.productRepo.ListProducts(ctx, repository.ListProductsParams{
		Search: params.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error) {
	if err := s.validateTrimmed(&params, params.trim); err != nil {
		return model.Product{}, fmt.Errorf("validate params: %w", err)
	}

	product := model.Product{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		ImageURL:    params.ImageURL,
		UpdatedAt:   s.now(),
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		updated, err := s.productRepo.
			WithDB(db).
			UpdateProduct(ctx, product)
		if err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}
		product = updated

		return s.publish(ctx, db, event.TopicProductUpdated, product.ID, event.NewProductChangedEvent(product))
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}

		return s.publish(ctx, db, event.TopicProductDeleted, id, event.ProductDeletedEvent{
			ProductID:  id,
			OccurredAt: s.now(),
		})
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

// publish stores ev in the outbox using the caller's transaction.
func (s *productService) publish(ctx context.Context, db db.DB, topic string, productID int64, ev any) error {
	if !s.opts.PublishEvents {
		return nil
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.outboxMsgRepo.
		WithDB(db).
		CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      payload,
			PartitionKey: ptr.New(event.PartitionKey(productID)),
		}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}

// validateTrimmed checks length limits against the raw input, the same
// value the HTTP contract measures, then trims and checks the rest.
func (s *productService) validateTrimmed(params any, trim func()) error {
	if err := s.validator.Validate(params); err != nil {
		return err
	}
	trim()
	return s.validator.Validate(params)
}

func (p *CreateProductParams) trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = normalizeImageURL(p.ImageURL)
}

func (p *UpdateProductParams) trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = normalizeImageURL(p.ImageURL)
}

func normalizeImageURL(u *string) *string {
	if u == nil {
		return nil
	}
	return ptr.NilIfZero(strings.TrimSpace(*u))
}
