package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/partner"
)

// CreateSupplierRequest represents a request to register a supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListSuppliersRequest represents filter options for the supplier list
type ListSuppliersRequest struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	SearchTerm string `form:"searchTerm"`
}

// ListSuppliersResponse represents a page of suppliers with dashboard totals
type ListSuppliersResponse struct {
	Suppliers          []SupplierResponse `json:"suppliers"`
	TotalSuppliers     int64              `json:"totalSuppliers"`
	LastMonthSuppliers int64              `json:"lastMonthSuppliers"`
}

func toSupplierResponse(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Address:   supplier.Address,
		Contact:   supplier.Contact,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}
