package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/inventaris/backend/internal/application/inventory"
	"github.com/inventaris/backend/internal/domain/inventory"
)

// GormTransactionScope implements the application TransactionScope using
// GORM transactions. The stock update and the ledger append of a recorded
// movement commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories exposes repositories bound to one open
// database transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Items returns the item repository scoped to the current transaction
func (r *gormTransactionalRepositories) Items() inventory.ItemRepository {
	return NewGormItemRepository(r.tx)
}

// Transactions returns the ledger repository scoped to the current transaction
func (r *gormTransactionalRepositories) Transactions() inventory.StockTransactionRepository {
	return NewGormStockTransactionRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
