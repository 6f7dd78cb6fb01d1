package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

const productsPath = "/api/products"

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListProducts(ctx, service.ListProductsParams{
		Search: request.Params.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}

	items := make([]gen.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return gen.ListProducts200JSONResponse(items), nil
}

func (h *productHandler) GetProduct(ctx context.Context, request gen.GetProductRequestObject) (gen.GetProductResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}

	return gen.GetProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	params := service.CreateProductParams{
		Name:        request.Body.Name,
		Description: request.Body.Description,
		Price:       request.Body.Price,
		ImageURL:    request.Body.ImageUrl,
	}
	product, err := h.productSvc.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}

	return gen.CreateProduct201JSONResponse{
		Body: toProductResponse(product),
		Headers: gen.CreateProduct201ResponseHeaders{
			Location: fmt.Sprintf("%s/%d", productsPath, product.ID),
		},
	}, nil
}

func (h *productHandler) UpdateProduct(ctx context.Context, request gen.UpdateProductRequestObject) (gen.UpdateProductResponseObject, error) {
	// a zero id is what clients send when they omit it from a form model
	if id := request.Body.Id; id != nil && *id != 0 && *id != request.Id {
		return nil, apperr.ProductIDMismatchErr.WithMsg("product id %d in body does not match path id %d", *id, request.Id)
	}

	params := service.UpdateProductParams{
		ID:          request.Id,
		Name:        request.Body.Name,
		Description: request.Body.Description,
		Price:       request.Body.Price,
		ImageURL:    request.Body.ImageUrl,
	}
	product, err := h.productSvc.UpdateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service update product: %w", err)
	}

	return gen.UpdateProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) DeleteProduct(ctx context.Context, request gen.DeleteProductRequestObject) (gen.DeleteProductResponseObject, error) {
	if err := h.productSvc.DeleteProduct(ctx, request.Id); err != nil {
		return nil, fmt.Errorf("product service delete product: %w", err)
	}

	return gen.DeleteProduct204Response{}, nil
}

func toProductResponse(p model.Product) gen.ProductResponse {
	return gen.ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageUrl:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
