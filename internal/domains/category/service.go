package category

import "context"

// Service is the business logic contract for categories.
type Service interface {
	CreateCategory(ctx context.Context, req *CreateRequest) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
