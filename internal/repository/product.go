package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type ListProductsParams struct {
	// Search filters by case-insensitive substring of name or description.
	Search *string
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	row, err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
		Name:        product.Name,
		Description: product.Description,
		Price:       decimalToNumeric(product.Price),
		ImageUrl:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	return sqlcProductToModelProduct(row)
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row, err := r.queries.ProductGet(ctx, r.db, id)
	if err != nil {
		if db.IsNoRows(err) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return sqlcProductToModelProduct(row)
}

func (r productRepository) ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error) {
	rows, err := r.queries.ProductList(ctx, r.db, params.Search)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		product, err := sqlcProductToModelProduct(row)
		if err != nil {
			return nil, fmt.Errorf("convert product %d to model product: %w", row.ID, err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	row, err := r.queries.ProductUpdate(ctx, r.db, sqlc.ProductUpdateParams{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       decimalToNumeric(product.Price),
		ImageUrl:    product.ImageURL,
		UpdatedAt:   product.UpdatedAt,
	})
	if err != nil {
		if db.IsNoRows(err) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	return sqlcProductToModelProduct(row)
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) error {
	affected, err := r.queries.ProductDelete(ctx, r.db, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if affected == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func sqlcProductToModelProduct(product sqlc.Product) (model.Product, error) {
	price, err := numericToDecimal(product.Price)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price: %w", err)
	}

	return model.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       price,
		ImageURL:    product.ImageUrl,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	switch {
	case !n.Valid:
		return decimal.Decimal{}, fmt.Errorf("numeric is null")
	case n.NaN, n.InfinityModifier != pgtype.Finite:
		return decimal.Decimal{}, fmt.Errorf("numeric is not finite")
	case n.Int == nil:
		return decimal.Zero, nil
	}

	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
