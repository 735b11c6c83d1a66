package inventory

import (
	"context"

	"github.com/inventaris/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the inventory
// repositories. The stock-transaction processor performs two writes per
// request (the item stock update and the ledger append); running both
// inside one scope makes them a single atomic unit, so a failure between
// them can never leave the stock field and the ledger disagreeing.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// sharing one underlying database transaction.
type TransactionalRepositories interface {
	Items() inventory.ItemRepository
	Transactions() inventory.StockTransactionRepository
}

// NoOpTransactionScope runs the function against plain repositories without
// a real transaction. Used in tests.
type NoOpTransactionScope struct {
	itemRepo inventory.ItemRepository
	txRepo   inventory.StockTransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(itemRepo inventory.ItemRepository, txRepo inventory.StockTransactionRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{itemRepo: itemRepo, txRepo: txRepo}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Items returns the item repository
func (s *NoOpTransactionScope) Items() inventory.ItemRepository {
	return s.itemRepo
}

// Transactions returns the stock transaction repository
func (s *NoOpTransactionScope) Transactions() inventory.StockTransactionRepository {
	return s.txRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
