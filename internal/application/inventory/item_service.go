package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/inventory"
	"github.com/inventaris/backend/internal/domain/partner"
	"github.com/inventaris/backend/internal/domain/shared"
)

// ItemService handles item management operations
type ItemService struct {
	itemRepo     inventory.ItemRepository
	supplierRepo partner.SupplierRepository
	scope        TransactionScope
	now          func() time.Time
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo inventory.ItemRepository,
	supplierRepo partner.SupplierRepository,
	scope TransactionScope,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
		scope:        scope,
		now:          time.Now,
	}
}

// SetClock overrides the service clock. Used in tests.
func (s *ItemService) SetClock(now func() time.Time) {
	s.now = now
}

// Create registers a new item with zero stock. The item's slug is derived
// from its name and must be unique.
func (s *ItemService) Create(ctx context.Context, actor identity.Actor, req CreateItemRequest) (*ItemResponse, error) {
	if !actor.CanModifyInventory() {
		return nil, shared.ErrForbidden
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Invalid supplier ID")
	}
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
	}

	item, err := inventory.NewItem(req.Name, req.Description, req.Price, supplierID, req.ImageURL)
	if err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.ExistsBySlug(ctx, item.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this name already exists")
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	resp := toItemResponse(item)
	return &resp, nil
}

// List returns a page of items plus the dashboard totals
func (s *ItemService) List(ctx context.Context, req ListItemsRequest) (*ListItemsResponse, error) {
	query := inventory.ItemQuery{
		Filter: shared.Filter{
			StartIndex: req.StartIndex,
			Limit:      req.Limit,
			OrderDir:   req.Order,
			Search:     req.SearchTerm,
		},
		Slug: req.Slug,
	}
	query.Filter = query.Filter.Normalize()

	items, err := s.itemRepo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.itemRepo.CountCreatedSince(ctx, s.now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i]))
	}

	return &ListItemsResponse{
		Items:          responses,
		TotalItems:     total,
		LastMonthItems: lastMonth,
	}, nil
}

// Update replaces an item's descriptive fields. Stock is never touched
// here; only recorded transactions move it.
func (s *ItemService) Update(ctx context.Context, actor identity.Actor, itemID string, req UpdateItemRequest) (*ItemResponse, error) {
	if !actor.CanModifyInventory() {
		return nil, shared.ErrForbidden
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Invalid item ID")
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Invalid supplier ID")
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, shared.ErrNotFound
	}

	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
	}

	previousSlug := item.Slug
	if err := item.Update(req.Name, req.Description, req.Price, supplierID, req.ImageURL); err != nil {
		return nil, err
	}
	if item.Slug != previousSlug {
		exists, err := s.itemRepo.ExistsBySlug(ctx, item.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this name already exists")
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := toItemResponse(item)
	return &resp, nil
}

// Delete removes an item together with its transaction history. Both
// deletes run in one database transaction so the ledger never references
// a missing item.
func (s *ItemService) Delete(ctx context.Context, actor identity.Actor, itemID string) error {
	if !actor.CanModifyInventory() {
		return shared.ErrForbidden
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return shared.NewDomainError("INVALID_ITEM", "Invalid item ID")
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.Items().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return shared.ErrNotFound
		}
		if err := repos.Transactions().DeleteByItem(ctx, id); err != nil {
			return err
		}
		return repos.Items().Delete(ctx, id)
	})
}
