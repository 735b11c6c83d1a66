package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventaris/backend/internal/domain/inventory"
)

// GormItemRepository implements inventory.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID. Returns nil when no item exists.
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns a page of items matching the query, newest first by default
func (r *GormItemRepository) FindAll(ctx context.Context, query inventory.ItemQuery) ([]inventory.Item, error) {
	var items []inventory.Item

	db := r.db.WithContext(ctx).Model(&inventory.Item{})
	if query.Slug != "" {
		db = db.Where("slug = ?", query.Slug)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	db = db.Order("updated_at " + orderDir(query.OrderDir)).
		Offset(query.StartIndex).
		Limit(query.Limit)

	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new item
func (r *GormItemRepository) Create(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save persists all fields of an existing item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by ID
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&inventory.Item{}, "id = ?", id).Error
}

// ExistsBySlug reports whether an item with the given slug exists
func (r *GormItemRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.Item{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of items
func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.Item{}).Count(&count).Error
	return count, err
}

// CountCreatedSince returns the number of items created at or after the given time
func (r *GormItemRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.Item{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func orderDir(dir string) string {
	if dir == "asc" {
		return "asc"
	}
	return "desc"
}

var _ inventory.ItemRepository = (*GormItemRepository)(nil)
