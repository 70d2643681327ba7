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
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("creates when name is free", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByName", mock.Anything, "Politics").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

		svc := NewCategoryService(repo, nil)
		category, err := svc.Create(context.Background(), "Politics")

		require.NoError(t, err)
		assert.Equal(t, "Politics", category.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByName", mock.Anything, "Politics").
			Return(&model.Category{ID: 1, Name: "Politics"}, nil)

		svc := NewCategoryService(repo, nil)
		_, err := svc.Create(context.Background(), "Politics")

		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Update(t *testing.T) {
	t.Run("renames an existing category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Category{ID: 1, Name: "Politics"}, nil)
		repo.On("FindByName", mock.Anything, "World").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

		svc := NewCategoryService(repo, nil)
		category, err := svc.Update(context.Background(), 1, "World")

		require.NoError(t, err)
		assert.Equal(t, "World", category.Name)
	})

	t.Run("missing category maps to not found", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCategoryService(repo, nil)
		_, err := svc.Update(context.Background(), 9, "World")

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})

	t.Run("rejects rename onto a taken name", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Category{ID: 1, Name: "Politics"}, nil)
		repo.On("FindByName", mock.Anything, "Business").
			Return(&model.Category{ID: 2, Name: "Business"}, nil)

		svc := NewCategoryService(repo, nil)
		_, err := svc.Update(context.Background(), 1, "Business")

		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("missing category maps to not found", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("Delete", mock.Anything, uint(5)).Return(gorm.ErrRecordNotFound)

		svc := NewCategoryService(repo, nil)
		err := svc.Delete(context.Background(), 5)

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})

	t.Run("deletes an existing category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("Delete", mock.Anything, uint(5)).Return(nil)

		svc := NewCategoryService(repo, nil)
		assert.NoError(t, svc.Delete(context.Background(), 5))
	})
}
