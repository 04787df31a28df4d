package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// UpdateData carries the fields overwritten by an update. A nil
// CategoryID leaves the foreign key unchanged.
type UpdateData struct {
	Name        string
	Price       decimal.Decimal
	Description *string
	CategoryID  *int64
}

// Repository is the catalog of read operations over products joined to
// categories, plus the write operations. Each read method has a fixed
// relational plan; methods documented as eager join the category table
// in the same statement, so serializing their results never triggers a
// second per-row fetch.
type Repository interface {
	// List returns all products, category by id only.
	List(ctx context.Context) ([]Product, error)

	// ListPaginated returns one page of products ordered by the given
	// sort option with id as the stable tiebreak.
	ListPaginated(ctx context.Context, page, size int, sort SortOption) ([]Product, error)

	// GetByID returns the product with its category eagerly fetched,
	// or nil when no row has the id.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// FindByName matches the exact, case-sensitive product name.
	FindByName(ctx context.Context, name string) ([]Product, error)

	// FindByPriceGreaterThan returns products strictly above price.
	FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]Product, error)

	// FindByPriceBetween is inclusive on both ends.
	FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]Product, error)

	// FindByNameContaining matches a case-insensitive substring of the
	// name. An empty keyword matches all rows.
	FindByNameContaining(ctx context.Context, keyword string) ([]Product, error)

	// FindByCategoryID returns the products owned by the category.
	FindByCategoryID(ctx context.Context, categoryID int64) ([]Product, error)

	// FindByCategoryName returns products whose category has the exact
	// name, with the category eagerly fetched.
	FindByCategoryName(ctx context.Context, categoryName string) ([]Product, error)

	// FindByPriceLessThanAndCategoryName joins on the category name and
	// filters price strictly below the bound.
	FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]Product, error)

	// FindDetailsByCategoryName projects (name, price, categoryName)
	// for every product in the named category.
	FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]Detail, error)

	// FindByNamePartAndCategoryDescription matches case-insensitive
	// substrings of the product name and the category description.
	FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]Product, error)

	// FindByPriceRangeAndCategoryID combines the inclusive price range
	// with an exact category id.
	FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]Product, error)

	// FindSummaryByCategoryName projects the flat summary records for
	// every product in the named category.
	FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]Summary, error)

	// Create inserts a product inside one transaction covering the
	// name-uniqueness pre-check, the category existence check, and the
	// insert. The stored row comes back with its category populated.
	Create(ctx context.Context, p *Product) (*Product, error)

	// Update overwrites name, price and description, and replaces the
	// foreign key when upd.CategoryID is set. Runs its checks and the
	// update in one transaction and returns the updated row with its
	// category populated.
	Update(ctx context.Context, id int64, upd UpdateData) (*Product, error)

	// Delete removes the product. Returns false when no row had the id.
	Delete(ctx context.Context, id int64) (bool, error)
}
