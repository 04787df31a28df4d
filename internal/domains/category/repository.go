package category

import "context"

// Repository is the data access contract for categories.
type Repository interface {
	// Create inserts a category and returns the stored row with the
	// store-assigned id. Duplicate names fail with
	// CATEGORY_NAME_ALREADY_EXISTS.
	Create(ctx context.Context, cat *Category) (*Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]Category, error)

	// GetByID returns the category with the given id, or nil when it
	// does not exist.
	GetByID(ctx context.Context, id int64) (*Category, error)

	// Delete removes the category and, through the store-level cascade,
	// every product that references it. Returns false when no row had
	// the given id.
	Delete(ctx context.Context, id int64) (bool, error)
}
