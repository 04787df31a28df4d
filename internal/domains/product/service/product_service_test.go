package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/product"
)

// mockRepository implements product.Repository with overridable
// function fields; unset methods return empty results.
type mockRepository struct {
	createFn  func(ctx context.Context, p *product.Product) (*product.Product, error)
	updateFn  func(ctx context.Context, id int64, upd product.UpdateData) (*product.Product, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
	getByIDFn func(ctx context.Context, id int64) (*product.Product, error)
}

func (m *mockRepository) List(ctx context.Context) ([]product.Product, error) { return nil, nil }
func (m *mockRepository) ListPaginated(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockRepository) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByNameContaining(ctx context.Context, keyword string) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByCategoryName(ctx context.Context, categoryName string) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]product.Detail, error) {
	return nil, nil
}
func (m *mockRepository) FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]product.Product, error) {
	return nil, nil
}
func (m *mockRepository) FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]product.Summary, error) {
	return nil, nil
}
func (m *mockRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return p, nil
}
func (m *mockRepository) Update(ctx context.Context, id int64, upd product.UpdateData) (*product.Product, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return &product.Product{ID: id}, nil
}
func (m *mockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request reaches the repository with trimmed name", func(t *testing.T) {
		var got *product.Product
		repo := &mockRepository{
			createFn: func(ctx context.Context, p *product.Product) (*product.Product, error) {
				got = p
				return p, nil
			},
		}
		svc := NewProductService(repo)

		_, err := svc.CreateProduct(ctx, &product.SaveRequest{
			Name:     "  Tablet  ",
			Price:    decimalPtr("300"),
			Category: &product.CategoryRef{ID: 1},
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Tablet", got.Name)
		assert.Equal(t, int64(1), got.CategoryID)
	})

	t.Run("missing category is a bad request", func(t *testing.T) {
		svc := NewProductService(&mockRepository{})

		_, err := svc.CreateProduct(ctx, &product.SaveRequest{
			Name:  "Tablet",
			Price: decimalPtr("300"),
		})
		require.Error(t, err)

		status, message := product.GetErrorResponse(err)
		assert.Equal(t, 400, status)
		assert.Contains(t, message, "Category")
	})

	t.Run("negative price never reaches the repository", func(t *testing.T) {
		repo := &mockRepository{
			createFn: func(ctx context.Context, p *product.Product) (*product.Product, error) {
				t.Fatal("repository should not be called")
				return nil, nil
			},
		}
		svc := NewProductService(repo)

		_, err := svc.CreateProduct(ctx, &product.SaveRequest{
			Name:     "Tablet",
			Price:    decimalPtr("-1"),
			Category: &product.CategoryRef{ID: 1},
		})
		require.Error(t, err)

		status, _ := product.GetErrorResponse(err)
		assert.Equal(t, 400, status)
	})

	t.Run("nil body is a bad request", func(t *testing.T) {
		svc := NewProductService(&mockRepository{})

		_, err := svc.CreateProduct(ctx, nil)
		require.Error(t, err)

		status, _ := product.GetErrorResponse(err)
		assert.Equal(t, 400, status)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("category id is forwarded only when present", func(t *testing.T) {
		var got product.UpdateData
		repo := &mockRepository{
			updateFn: func(ctx context.Context, id int64, upd product.UpdateData) (*product.Product, error) {
				got = upd
				return &product.Product{ID: id}, nil
			},
		}
		svc := NewProductService(repo)

		_, err := svc.UpdateProduct(ctx, 7, &product.SaveRequest{
			Name:  "Tablet",
			Price: decimalPtr("250"),
		})
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)

		_, err = svc.UpdateProduct(ctx, 7, &product.SaveRequest{
			Name:     "Tablet",
			Price:    decimalPtr("250"),
			Category: &product.CategoryRef{ID: 2},
		})
		require.NoError(t, err)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, int64(2), *got.CategoryID)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &mockRepository{
			deleteFn: func(ctx context.Context, id int64) (bool, error) {
				return false, nil
			},
		}
		svc := NewProductService(repo)

		err := svc.DeleteProduct(ctx, 99)
		require.Error(t, err)

		status, _ := product.GetErrorResponse(err)
		assert.Equal(t, 404, status)
	})

	t.Run("deleted row succeeds", func(t *testing.T) {
		svc := NewProductService(&mockRepository{})
		assert.NoError(t, svc.DeleteProduct(ctx, 1))
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("nil row maps to not found", func(t *testing.T) {
		svc := NewProductService(&mockRepository{})

		_, err := svc.GetProduct(context.Background(), 42)
		require.Error(t, err)

		status, message := product.GetErrorResponse(err)
		assert.Equal(t, 404, status)
		assert.Contains(t, message, "42")
	})
}
