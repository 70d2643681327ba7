package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"newsapi/internal/cache"
	apperrors "newsapi/internal/errors"
	"newsapi/internal/model"
	"newsapi/internal/repository"
)

const (
	newsListCacheKey = "news:list"
	newsListCacheTTL = 5 * time.Minute
)

// CreateNewsInput carries the fields for a new article. AuthorID comes from
// the authenticated claims, never from the request body.
type CreateNewsInput struct {
	Title       string
	Content     string
	CategoryIDs []uint
	Published   bool
	Thumbnail   []byte
	AuthorID    uint
}

// UpdateNewsInput carries a partial update; nil fields are left unchanged.
type UpdateNewsInput struct {
	Title       *string
	Content     *string
	CategoryIDs []uint
	Published   *bool
	Thumbnail   []byte
}

// NewsService exposes news operations with a read-through cache on the list.
type NewsService interface {
	List(ctx context.Context) ([]model.News, error)
	Get(ctx context.Context, id uint) (*model.News, error)
	Search(ctx context.Context, filter repository.SearchFilter) ([]model.News, error)
	Create(ctx context.Context, input CreateNewsInput) (*model.News, error)
	Update(ctx context.Context, id uint, input UpdateNewsInput) (*model.News, error)
	Delete(ctx context.Context, id uint) error
}

type newsService struct {
	news       repository.NewsRepository
	categories repository.CategoryRepository
	cache      *cache.Client
}

// NewNewsService creates a new news service.
func NewNewsService(news repository.NewsRepository, categories repository.CategoryRepository, cache *cache.Client) NewsService {
	return &newsService{news: news, categories: categories, cache: cache}
}

func (s *newsService) List(ctx context.Context) ([]model.News, error) {
	if data, _ := s.cache.Get(ctx, newsListCacheKey); data != nil {
		var cached []model.News
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.news.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, newsListCacheKey, payload, newsListCacheTTL)
	}
	return items, nil
}

func (s *newsService) Get(ctx context.Context, id uint) (*model.News, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return news, nil
}

func (s *newsService) Search(ctx context.Context, filter repository.SearchFilter) ([]model.News, error) {
	return s.news.Search(ctx, filter)
}

// Create resolves the referenced categories and persists the article with its
// links in one compound store call.
func (s *newsService) Create(ctx context.Context, input CreateNewsInput) (*model.News, error) {
	if len(input.Thumbnail) == 0 {
		return nil, apperrors.ErrThumbnailMissing
	}

	cats, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	news := &model.News{
		Title:      input.Title,
		Content:    input.Content,
		Thumbnail:  input.Thumbnail,
		Published:  input.Published,
		AuthorID:   input.AuthorID,
		Categories: cats,
	}
	if err := s.news.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return news, nil
}

func (s *newsService) Update(ctx context.Context, id uint, input UpdateNewsInput) (*model.News, error) {
	news, err := s.news.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}

	if input.Title != nil {
		news.Title = *input.Title
	}
	if input.Content != nil {
		news.Content = *input.Content
	}
	if input.Published != nil {
		news.Published = *input.Published
	}
	if input.Thumbnail != nil {
		news.Thumbnail = input.Thumbnail
	}

	var cats []model.Category
	if input.CategoryIDs != nil {
		cats, err = s.resolveCategories(ctx, input.CategoryIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.news.Update(ctx, news, cats); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return s.Get(ctx, id)
}

func (s *newsService) Delete(ctx context.Context, id uint) error {
	if err := s.news.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return fmt.Errorf("delete news: %w", err)
	}

	_ = s.cache.Delete(ctx, newsListCacheKey)
	return nil
}

// resolveCategories loads the referenced categories and fails when any id is
// unknown, so the store never fabricates link rows for missing categories.
func (s *newsService) resolveCategories(ctx context.Context, ids []uint) ([]model.Category, error) {
	if len(ids) == 0 {
		return []model.Category{}, nil
	}
	cats, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	if len(cats) != len(ids) {
		return nil, apperrors.ErrCategoryNotFound
	}
	return cats, nil
}
