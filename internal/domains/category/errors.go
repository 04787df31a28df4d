package category

import (
	"errors"
	"fmt"
	"net/http"
)

// CategoryError is the base error for the category domain.
type CategoryError struct {
	Code    string // stable error code, e.g. "CATEGORY_NOT_FOUND"
	Message string // human-readable message, safe for clients
	Err     error  // underlying error, logged but never sent to clients
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryNotFound reports a missing id-addressed category row.
func NewCategoryNotFound(id int64) *CategoryError {
	return &CategoryError{
		Code:    "CATEGORY_NOT_FOUND",
		Message: fmt.Sprintf("Category with ID %d not found", id),
	}
}

// NewCategoryNameAlreadyExists reports a uniqueness violation on name.
func NewCategoryNameAlreadyExists(name string) *CategoryError {
	return &CategoryError{
		Code:    "CATEGORY_NAME_ALREADY_EXISTS",
		Message: fmt.Sprintf("Category with name '%s' already exists", name),
	}
}

// NewInvalidCategory reports a validation failure on the request body.
func NewInvalidCategory(reason string) *CategoryError {
	return &CategoryError{
		Code:    "INVALID_CATEGORY",
		Message: reason,
	}
}

// NewStoreError wraps an unexpected store failure. The underlying error
// is preserved for logging; clients only see the stable message.
func NewStoreError(err error) *CategoryError {
	return &CategoryError{
		Code:    "CATEGORY_STORE_ERROR",
		Message: "Failed to access category store",
		Err:     err,
	}
}

// GetErrorResponse maps a domain error to its HTTP status and client
// message. Unknown errors become an opaque 500.
func GetErrorResponse(err error) (int, string) {
	var catErr *CategoryError
	if !errors.As(err, &catErr) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch catErr.Code {
	case "CATEGORY_NOT_FOUND":
		return http.StatusNotFound, catErr.Message
	case "CATEGORY_NAME_ALREADY_EXISTS":
		return http.StatusConflict, catErr.Message
	case "INVALID_CATEGORY":
		return http.StatusBadRequest, catErr.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
