package partner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/partner"
	"github.com/inventaris/backend/internal/domain/shared"
)

// SupplierService handles supplier management operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	now          func() time.Time
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		now:          time.Now,
	}
}

// SetClock overrides the service clock. Used in tests.
func (s *SupplierService) SetClock(now func() time.Time) {
	s.now = now
}

// Create registers a new supplier
func (s *SupplierService) Create(ctx context.Context, actor identity.Actor, req CreateSupplierRequest) (*SupplierResponse, error) {
	if !actor.CanModifyInventory() {
		return nil, shared.ErrForbidden
	}

	supplier, err := partner.NewSupplier(req.Name, req.Address, req.Contact)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByName(ctx, supplier.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A supplier with this name already exists")
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// List returns a page of suppliers plus the dashboard totals
func (s *SupplierService) List(ctx context.Context, req ListSuppliersRequest) (*ListSuppliersResponse, error) {
	filter := shared.Filter{
		StartIndex: req.StartIndex,
		Limit:      req.Limit,
		OrderDir:   req.Order,
		Search:     req.SearchTerm,
	}.Normalize()

	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.supplierRepo.CountCreatedSince(ctx, s.now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, toSupplierResponse(&suppliers[i]))
	}

	return &ListSuppliersResponse{
		Suppliers:          responses,
		TotalSuppliers:     total,
		LastMonthSuppliers: lastMonth,
	}, nil
}

// Update replaces a supplier's fields
func (s *SupplierService) Update(ctx context.Context, actor identity.Actor, supplierID string, req UpdateSupplierRequest) (*SupplierResponse, error) {
	if !actor.CanModifyInventory() {
		return nil, shared.ErrForbidden
	}

	id, err := uuid.Parse(supplierID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Invalid supplier ID")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, shared.ErrNotFound
	}

	newName := strings.TrimSpace(req.Name)
	if newName != supplier.Name {
		exists, err := s.supplierRepo.ExistsByName(ctx, newName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A supplier with this name already exists")
		}
	}

	if err := supplier.Update(req.Name, req.Address, req.Contact); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, actor identity.Actor, supplierID string) error {
	if !actor.CanModifyInventory() {
		return shared.ErrForbidden
	}

	id, err := uuid.Parse(supplierID)
	if err != nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Invalid supplier ID")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return shared.ErrNotFound
	}

	return s.supplierRepo.Delete(ctx, id)
}
