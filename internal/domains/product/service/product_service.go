package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"catalog-backend/internal/domains/product"
)

// productService implements product.Service. Read methods delegate to
// the catalog; write methods validate the payload first so the
// repository only ever sees well-formed records.
type productService struct {
	repo product.Repository
}

func NewProductService(repo product.Repository) product.Service {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]product.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) ListProductsPaginated(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
	return s.repo.ListPaginated(ctx, page, size, sort)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.NewProductNotFound(id)
	}

	return p, nil
}

func (s *productService) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *productService) FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]product.Product, error) {
	return s.repo.FindByPriceGreaterThan(ctx, price)
}

func (s *productService) FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]product.Product, error) {
	return s.repo.FindByPriceBetween(ctx, min, max)
}

func (s *productService) FindByNameContaining(ctx context.Context, keyword string) ([]product.Product, error) {
	return s.repo.FindByNameContaining(ctx, keyword)
}

func (s *productService) FindByCategoryID(ctx context.Context, categoryID int64) ([]product.Product, error) {
	return s.repo.FindByCategoryID(ctx, categoryID)
}

func (s *productService) FindByCategoryName(ctx context.Context, categoryName string) ([]product.Product, error) {
	return s.repo.FindByCategoryName(ctx, categoryName)
}

func (s *productService) FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error) {
	return s.repo.FindByPriceLessThanAndCategoryName(ctx, price, categoryName)
}

func (s *productService) FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]product.Detail, error) {
	return s.repo.FindDetailsByCategoryName(ctx, categoryName)
}

func (s *productService) FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]product.Product, error) {
	return s.repo.FindByNamePartAndCategoryDescription(ctx, namePart, descPart)
}

func (s *productService) FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]product.Product, error) {
	return s.repo.FindByPriceRangeAndCategoryID(ctx, min, max, categoryID)
}

func (s *productService) FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]product.Summary, error) {
	return s.repo.FindSummaryByCategoryName(ctx, categoryName)
}

func (s *productService) CreateProduct(ctx context.Context, req *product.SaveRequest) (*product.Product, error) {
	if req == nil {
		return nil, product.NewInvalidProduct("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, product.NewInvalidProduct(err.Error())
	}
	if req.Category == nil || req.Category.ID == 0 {
		return nil, product.NewCategoryRequired()
	}

	p := &product.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       *req.Price,
		Description: req.Description,
		CategoryID:  req.Category.ID,
	}
	if p.Name == "" {
		return nil, product.NewInvalidProduct("name is required")
	}

	return s.repo.Create(ctx, p)
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *product.SaveRequest) (*product.Product, error) {
	if req == nil {
		return nil, product.NewInvalidProduct("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, product.NewInvalidProduct(err.Error())
	}

	upd := product.UpdateData{
		Name:        strings.TrimSpace(req.Name),
		Price:       *req.Price,
		Description: req.Description,
	}
	if upd.Name == "" {
		return nil, product.NewInvalidProduct("name is required")
	}
	if req.Category != nil {
		upd.CategoryID = &req.Category.ID
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return product.NewProductNotFound(id)
	}

	return nil
}
