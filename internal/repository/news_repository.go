package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"newsapi/internal/model"
)

// SearchFilter is a conjunctive news filter. Zero-valued criteria match
// everything for that dimension.
type SearchFilter struct {
	Keyword    string
	CategoryID uint
	AuthorID   uint
}

// NewsRepository defines news persistence operations.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, news *model.News, categories []model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.News, error)
	List(ctx context.Context) ([]model.News, error)
	Search(ctx context.Context, filter SearchFilter) ([]model.News, error)
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create persists the article and its category links in one compound call.
func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// Update saves scalar fields and, when categories is non-nil, replaces the
// category set, inside one transaction.
func (r *newsRepository) Update(ctx context.Context, news *model.News, categories []model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(news).Error; err != nil {
			return err
		}
		if categories != nil {
			if err := tx.Model(news).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the article. Reports gorm.ErrRecordNotFound when no row matched.
func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.News{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) List(ctx context.Context) ([]model.News, error) {
	var items []model.News
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Search runs the conjunctive filter and loads each match with its categories
// and author.
func (r *newsRepository) Search(ctx context.Context, filter SearchFilter) ([]model.News, error) {
	q := applySearchFilter(r.db.WithContext(ctx).
		Model(&model.News{}).
		Preload("Categories").
		Preload("Author"), filter)

	var items []model.News
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applySearchFilter composes the conjunctive predicates: case-insensitive
// substring match on title or content, membership in a category via the link
// table, exact author match. Criteria left at their zero value add no
// predicate.
func applySearchFilter(q *gorm.DB, filter SearchFilter) *gorm.DB {
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		q = q.Where("LOWER(news.title) LIKE ? OR LOWER(news.content) LIKE ?", pattern, pattern)
	}
	if filter.CategoryID != 0 {
		q = q.Distinct("news.*").
			Joins("JOIN news_categories ON news_categories.news_id = news.id").
			Where("news_categories.category_id = ?", filter.CategoryID)
	}
	if filter.AuthorID != 0 {
		q = q.Where("news.author_id = ?", filter.AuthorID)
	}
	return q
}
