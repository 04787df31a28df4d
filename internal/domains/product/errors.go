package product

import (
	"errors"
	"fmt"
	"net/http"
)

// ProductError is the base error for the product domain.
type ProductError struct {
	Code    string // stable error code, e.g. "PRODUCT_NOT_FOUND"
	Message string // human-readable message, safe for clients
	Err     error  // underlying error, logged but never sent to clients
}

func (e *ProductError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductNotFound reports a missing id-addressed product row.
func NewProductNotFound(id int64) *ProductError {
	return &ProductError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: fmt.Sprintf("Product with ID %d not found", id),
	}
}

// NewProductNameAlreadyExists reports a uniqueness violation on name.
func NewProductNameAlreadyExists(name string) *ProductError {
	return &ProductError{
		Code:    "PRODUCT_NAME_ALREADY_EXISTS",
		Message: fmt.Sprintf("Product with name '%s' already exists", name),
	}
}

// NewInvalidProduct reports a validation failure on the request body.
func NewInvalidProduct(reason string) *ProductError {
	return &ProductError{
		Code:    "INVALID_PRODUCT",
		Message: reason,
	}
}

// NewCategoryRequired reports a create payload without a category id.
func NewCategoryRequired() *ProductError {
	return &ProductError{
		Code:    "CATEGORY_REQUIRED",
		Message: "Category must be provided with ID",
	}
}

// NewUnknownCategory reports a referenced category id with no row
// behind it.
func NewUnknownCategory(id int64) *ProductError {
	return &ProductError{
		Code:    "UNKNOWN_CATEGORY",
		Message: fmt.Sprintf("Category with ID %d does not exist", id),
	}
}

// NewStoreError wraps an unexpected store failure. The underlying error
// is preserved for logging; clients only see the stable message.
func NewStoreError(err error) *ProductError {
	return &ProductError{
		Code:    "PRODUCT_STORE_ERROR",
		Message: "Failed to access product store",
		Err:     err,
	}
}

// GetErrorResponse maps a domain error to its HTTP status and client
// message. Unknown errors become an opaque 500.
func GetErrorResponse(err error) (int, string) {
	var prodErr *ProductError
	if !errors.As(err, &prodErr) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch prodErr.Code {
	case "PRODUCT_NOT_FOUND":
		return http.StatusNotFound, prodErr.Message
	case "PRODUCT_NAME_ALREADY_EXISTS":
		return http.StatusConflict, prodErr.Message
	case "INVALID_PRODUCT", "CATEGORY_REQUIRED", "UNKNOWN_CATEGORY":
		return http.StatusBadRequest, prodErr.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
