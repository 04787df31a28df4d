package service

import (
	"context"
	"strings"

	"catalog-backend/internal/domains/category"
)

// categoryService implements category.Service.
type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *category.CreateRequest) (*category.Category, error) {
	if req == nil {
		return nil, category.NewInvalidCategory("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, category.NewInvalidCategory(err.Error())
	}

	cat := &category.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if cat.Name == "" {
		return nil, category.NewInvalidCategory("name is required")
	}

	return s.repo.Create(ctx, cat)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]category.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.NewCategoryNotFound(id)
	}

	return cat, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return category.NewCategoryNotFound(id)
	}

	return nil
}
