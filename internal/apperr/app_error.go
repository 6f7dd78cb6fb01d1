package apperr

import "github.com/tuanvumaihuynh/product-catalog/pkg/zerror"

const (
	ValidationErrorCode     = "VALIDATION_FAILED"
	ProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	ProductIDMismatchCode   = "PRODUCT_ID_MISMATCH"
	DatabaseUnavailableCode = "DATABASE_UNAVAILABLE"
)

var (
	ValidationErr          = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr     = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ProductIDMismatchErr   = zerror.NewBadRequest(ProductIDMismatchCode, "product id in body does not match the path")
	DatabaseUnavailableErr = zerror.NewServiceUnavailable(DatabaseUnavailableCode, "database is unavailable")
)
