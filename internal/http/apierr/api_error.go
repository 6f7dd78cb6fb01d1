package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	gen.ErrorResponse

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Code:    "internalServerError",
		Message: "an unknown error occurred",
	},
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    zErr.Code(),
				Message: zErr.Msg(),
				Details: fieldErrors(err),
			},
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if details := fieldErrors(err); details != nil {
		return validationFailed("validation error", details)
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return validationFailed(requestErrorMessage(reqErr), nil)
	}

	if isOpenAPICodegenErr(err) {
		return validationFailed(err.Error(), nil)
	}

	return InternalServerErr
}

func validationFailed(msg string, details *[]gen.FieldError) ErrorResponse {
	return ErrorResponse{
		ErrorResponse: gen.ErrorResponse{
			Code:    apperr.ValidationErrorCode,
			Message: msg,
			Details: details,
		},
		StatusCode: http.StatusBadRequest,
	}
}

// fieldErrors collects per-field problems from validator and OpenAPI
// request errors found in err's chain.
func fieldErrors(err error) *[]gen.FieldError {
	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]gen.FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = gen.FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}
		return &details
	}

	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return nil
	}

	var schemaErr *openapi3.SchemaError
	switch {
	case errors.As(reqErr.Err, &schemaErr):
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		}
		return &[]gen.FieldError{{Field: field, Message: schemaErr.Reason}}
	case reqErr.Parameter != nil:
		return &[]gen.FieldError{{Field: reqErr.Parameter.Name, Message: requestErrorMessage(reqErr)}}
	default:
		return nil
	}
}

func requestErrorMessage(e *openapi3filter.RequestError) string {
	switch {
	case e.Reason != "":
		return e.Reason
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "invalid request"
	}
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusForbidden:
		return http.StatusForbidden
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusNotImplemented:
		return http.StatusNotImplemented
	case zerror.StatusBadGateway:
		return http.StatusBadGateway
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isOpenAPICodegenErr(err error) bool {
	var (
		e1 *gen.UnescapedCookieParamError
		e2 *gen.UnmarshalingParamError
		e3 *gen.RequiredParamError
		e4 *gen.RequiredHeaderError
		e5 *gen.InvalidParamFormatError
		e6 *gen.TooManyValuesForParamError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2) ||
		errors.As(err, &e3) ||
		errors.As(err, &e4) ||
		errors.As(err, &e5) ||
		errors.As(err, &e6)
}
