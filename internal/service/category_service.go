package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"newsapi/internal/cache"
	apperrors "newsapi/internal/errors"
	"newsapi/internal/model"
	"newsapi/internal/repository"
)

// CategoryService exposes category operations. Mutations invalidate the news
// list cache because category names are embedded in cached articles.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categories repository.CategoryRepository
	cache      *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{categories: categories, cache: cache}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// Create enforces name uniqueness before the insert.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	existing, err := s.categories.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrCategoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category := &model.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if existing, err := s.categories.FindByName(ctx, name); err == nil && existing != nil && existing.ID != id {
		return nil, apperrors.ErrCategoryExists
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return nil
}
