package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inventaris/backend/internal/domain/shared"
)

// ItemQuery carries the list filters for items
type ItemQuery struct {
	shared.Filter
	Slug string
}

// ItemRepository is the persistence boundary for items. The stock field is
// the only mutable state the transaction processor touches; everything else
// belongs to plain item management.
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindAll(ctx context.Context, query ItemQuery) ([]Item, error)
	Create(ctx context.Context, item *Item) error
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// TransactionQuery carries the list filters for stock transactions
type TransactionQuery struct {
	shared.Filter
	Kind   TransactionType // empty = all kinds
	ItemID *uuid.UUID      // nil = all items
}

// StockTransactionRepository is the append-only persistence boundary for
// the transaction ledger. There is intentionally no update or single-record
// delete; DeleteByItem exists only for the item-deletion cascade.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *StockTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*StockTransaction, error)
	FindFiltered(ctx context.Context, query TransactionQuery) ([]StockTransaction, error)
	FindInWindow(ctx context.Context, window Window, itemID *uuid.UUID) ([]StockTransaction, error)
	Count(ctx context.Context) (int64, error)
	DeleteByItem(ctx context.Context, itemID uuid.UUID) error
}
