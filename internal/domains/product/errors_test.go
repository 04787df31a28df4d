package product

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "not found",
			err:        NewProductNotFound(42),
			wantStatus: http.StatusNotFound,
			wantInBody: "42",
		},
		{
			name:       "name conflict",
			err:        NewProductNameAlreadyExists("Smartphone"),
			wantStatus: http.StatusConflict,
			wantInBody: "Smartphone",
		},
		{
			name:       "unknown category mentions the id",
			err:        NewUnknownCategory(9999),
			wantStatus: http.StatusBadRequest,
			wantInBody: "9999",
		},
		{
			name:       "missing category reference",
			err:        NewCategoryRequired(),
			wantStatus: http.StatusBadRequest,
			wantInBody: "Category",
		},
		{
			name:       "store error stays opaque",
			err:        NewStoreError(errors.New("connection refused to 10.0.0.5")),
			wantStatus: http.StatusInternalServerError,
			wantInBody: "internal server error",
		},
		{
			name:       "non-domain error stays opaque",
			err:        errors.New("pq: something leaked"),
			wantStatus: http.StatusInternalServerError,
			wantInBody: "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := GetErrorResponse(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, message, tc.wantInBody)
			assert.NotContains(t, message, "10.0.0.5")
		})
	}
}
