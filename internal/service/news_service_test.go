package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "newsapi/internal/errors"
	"newsapi/internal/model"
	"newsapi/internal/repository"
)

// MockNewsRepository is a mock implementation of NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, news *model.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) Update(ctx context.Context, news *model.News, categories []model.Category) error {
	args := m.Called(ctx, news, categories)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) List(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockNewsRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]model.News, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func TestNewsService_Create(t *testing.T) {
	thumbnail := []byte{0xff, 0xd8, 0xff, 0xe0}

	t.Run("creates with resolved categories and fixed author", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		catRepo := new(MockCategoryRepository)
		catRepo.On("FindByIDs", mock.Anything, []uint{1, 2}).Return([]model.Category{
			{ID: 1, Name: "Politics"},
			{ID: 2, Name: "Business"},
		}, nil)
		newsRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.News")).Return(nil)

		svc := NewNewsService(newsRepo, catRepo, nil)
		news, err := svc.Create(context.Background(), CreateNewsInput{
			Title:       "Budget approved",
			Content:     "The annual budget passed.",
			CategoryIDs: []uint{1, 2},
			Published:   true,
			Thumbnail:   thumbnail,
			AuthorID:    42,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), news.AuthorID)
		assert.Equal(t, thumbnail, news.Thumbnail)
		assert.Len(t, news.Categories, 2)
		newsRepo.AssertExpectations(t)
	})

	t.Run("rejects missing thumbnail", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		catRepo := new(MockCategoryRepository)

		svc := NewNewsService(newsRepo, catRepo, nil)
		_, err := svc.Create(context.Background(), CreateNewsInput{
			Title:    "No image",
			Content:  "text",
			AuthorID: 1,
		})

		assert.ErrorIs(t, err, apperrors.ErrThumbnailMissing)
		newsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category id", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		catRepo := new(MockCategoryRepository)
		catRepo.On("FindByIDs", mock.Anything, []uint{1, 99}).Return([]model.Category{
			{ID: 1, Name: "Politics"},
		}, nil)

		svc := NewNewsService(newsRepo, catRepo, nil)
		_, err := svc.Create(context.Background(), CreateNewsInput{
			Title:       "Bad category",
			Content:     "text",
			CategoryIDs: []uint{1, 99},
			Thumbnail:   thumbnail,
			AuthorID:    1,
		})

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
		newsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNewsService_Get(t *testing.T) {
	t.Run("missing article maps to not found", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		newsRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNewsService(newsRepo, new(MockCategoryRepository), nil)
		_, err := svc.Get(context.Background(), 404)

		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
	})
}

func TestNewsService_Search(t *testing.T) {
	newsRepo := new(MockNewsRepository)
	filter := repository.SearchFilter{Keyword: "budget", CategoryID: 2}
	expected := []model.News{{ID: 1, Title: "Budget approved"}}
	newsRepo.On("Search", mock.Anything, filter).Return(expected, nil)

	svc := NewNewsService(newsRepo, new(MockCategoryRepository), nil)
	items, err := svc.Search(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
	newsRepo.AssertExpectations(t)
}

func TestNewsService_Update(t *testing.T) {
	title := "Updated title"
	published := true

	t.Run("applies only the provided fields", func(t *testing.T) {
		existing := &model.News{
			ID:        1,
			Title:     "Old title",
			Content:   "Old content",
			Thumbnail: []byte{1, 2, 3},
		}
		newsRepo := new(MockNewsRepository)
		newsRepo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
		newsRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *model.News) bool {
			return n.Title == title && n.Content == "Old content" && n.Published
		}), []model.Category(nil)).Return(nil)

		svc := NewNewsService(newsRepo, new(MockCategoryRepository), nil)
		news, err := svc.Update(context.Background(), 1, UpdateNewsInput{
			Title:     &title,
			Published: &published,
		})

		require.NoError(t, err)
		assert.Equal(t, title, news.Title)
		assert.Equal(t, "Old content", news.Content)
		assert.Equal(t, []byte{1, 2, 3}, news.Thumbnail)
		newsRepo.AssertExpectations(t)
	})

	t.Run("missing article maps to not found", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		newsRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNewsService(newsRepo, new(MockCategoryRepository), nil)
		_, err := svc.Update(context.Background(), 9, UpdateNewsInput{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
		newsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewsService_Delete(t *testing.T) {
	newsRepo := new(MockNewsRepository)
	newsRepo.On("Delete", mock.Anything, uint(7)).Return(gorm.ErrRecordNotFound)

	svc := NewNewsService(newsRepo, new(MockCategoryRepository), nil)
	err := svc.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}
