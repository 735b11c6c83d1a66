package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inventaris/backend/internal/domain/shared"
)

// SupplierRepository is the persistence boundary for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	Create(ctx context.Context, supplier *Supplier) error
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
