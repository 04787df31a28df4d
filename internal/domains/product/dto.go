package product

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CategoryRef is the category reference in write payloads. Only the id
// matters; the stored category row is resolved from it.
type CategoryRef struct {
	ID int64 `json:"id"`
}

// SaveRequest is the payload for POST /products and PUT /products/:id.
// The category reference is mandatory on create and optional on update,
// so that rule lives in the service rather than here.
type SaveRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Category    *CategoryRef     `json:"category"`
}

func (r SaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.By(validatePrice),
		),
	)
}

func validatePrice(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil // Required covers absence
	}
	if price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	return nil
}

// SortOption is a parsed "field,dir" sort parameter.
type SortOption struct {
	Field     string
	Direction string
}

// DefaultSort orders by id ascending.
var DefaultSort = SortOption{Field: "id", Direction: "asc"}

// sortFields whitelists sortable columns; the field name is spliced
// into SQL, so nothing outside this set may pass.
var sortFields = map[string]bool{
	"id":    true,
	"name":  true,
	"price": true,
}

// ParseSort parses a "field,dir" sort parameter. The empty string
// yields DefaultSort; anything malformed is an error the dispatcher
// maps to a 400.
func ParseSort(raw string) (SortOption, error) {
	if raw == "" {
		return DefaultSort, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return SortOption{}, fmt.Errorf("sort must be \"field,asc|desc\", got %q", raw)
	}

	field := strings.TrimSpace(parts[0])
	if !sortFields[field] {
		return SortOption{}, fmt.Errorf("unknown sort field %q", field)
	}

	dir := strings.ToLower(strings.TrimSpace(parts[1]))
	if dir != "asc" && dir != "desc" {
		return SortOption{}, fmt.Errorf("sort direction must be asc or desc, got %q", parts[1])
	}

	return SortOption{Field: field, Direction: dir}, nil
}
