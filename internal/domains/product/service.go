package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service is the business logic contract for products. Read methods
// mirror the repository catalog; write methods add request validation
// on top of it.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsPaginated(ctx context.Context, page, size int, sort SortOption) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	FindByName(ctx context.Context, name string) ([]Product, error)
	FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]Product, error)
	FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]Product, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]Product, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]Product, error)
	FindByCategoryName(ctx context.Context, categoryName string) ([]Product, error)
	FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]Product, error)
	FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]Detail, error)
	FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]Product, error)
	FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]Product, error)
	FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]Summary, error)

	CreateProduct(ctx context.Context, req *SaveRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, req *SaveRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
