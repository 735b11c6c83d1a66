package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventaris/backend/internal/domain/inventory"
)

// GormStockTransactionRepository implements inventory.StockTransactionRepository
// using GORM. The ledger is append-only; the only delete path is the
// item-deletion cascade.
type GormStockTransactionRepository struct {
	db *gorm.DB
}

// NewGormStockTransactionRepository creates a new GormStockTransactionRepository
func NewGormStockTransactionRepository(db *gorm.DB) *GormStockTransactionRepository {
	return &GormStockTransactionRepository{db: db}
}

// Create appends a transaction to the ledger
func (r *GormStockTransactionRepository) Create(ctx context.Context, tx *inventory.StockTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByID finds a transaction by its ID. Returns nil when no record exists.
func (r *GormStockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockTransaction, error) {
	var tx inventory.StockTransaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

// FindFiltered returns a page of transactions matching the query, ordered by
// date. Date strings in YYYY-MM-DD form sort chronologically.
func (r *GormStockTransactionRepository) FindFiltered(ctx context.Context, query inventory.TransactionQuery) ([]inventory.StockTransaction, error) {
	var txs []inventory.StockTransaction

	db := r.db.WithContext(ctx).Model(&inventory.StockTransaction{})
	if query.Kind != "" {
		db = db.Where("kind = ?", query.Kind)
	}
	if query.ItemID != nil {
		db = db.Where("item_id = ?", *query.ItemID)
	}
	if query.Search != "" {
		db = db.Where("date LIKE ?", "%"+query.Search+"%")
	}

	dir := orderDir(query.OrderDir)
	db = db.Order("date " + dir).Order("created_at " + dir).
		Offset(query.StartIndex).
		Limit(query.Limit)

	if err := db.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindInWindow returns all transactions whose date falls in [Start, End),
// optionally restricted to one item, in chronological order.
func (r *GormStockTransactionRepository) FindInWindow(ctx context.Context, window inventory.Window, itemID *uuid.UUID) ([]inventory.StockTransaction, error) {
	var txs []inventory.StockTransaction

	db := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", window.Start, window.End)
	if itemID != nil {
		db = db.Where("item_id = ?", *itemID)
	}

	if err := db.Order("date asc").Order("created_at asc").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Count returns the total number of stored transactions
func (r *GormStockTransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.StockTransaction{}).Count(&count).Error
	return count, err
}

// DeleteByItem removes all transactions of one item. Only called from the
// item-deletion cascade inside a transaction scope.
func (r *GormStockTransactionRepository) DeleteByItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&inventory.StockTransaction{}, "item_id = ?", itemID).Error
}

var _ inventory.StockTransactionRepository = (*GormStockTransactionRepository)(nil)
