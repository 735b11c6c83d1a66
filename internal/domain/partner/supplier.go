package partner

import (
	"strings"

	"github.com/inventaris/backend/internal/domain/shared"
)

// Supplier represents a goods supplier referenced by items
type Supplier struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Address string `gorm:"type:varchar(500);not null" json:"address"`
	Contact string `gorm:"type:varchar(100);not null" json:"contact"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

func validateSupplierFields(name, address, contact string) error {
	if name == "" || address == "" || contact == "" {
		return shared.NewDomainError("INVALID_INPUT", "Please provide all required fields for supplier")
	}
	return nil
}

// NewSupplier creates a new supplier; all fields are required and trimmed
func NewSupplier(name, address, contact string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	contact = strings.TrimSpace(contact)

	if err := validateSupplierFields(name, address, contact); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Contact:    contact,
	}, nil
}

// Update replaces the supplier's fields
func (s *Supplier) Update(name, address, contact string) error {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	contact = strings.TrimSpace(contact)

	if err := validateSupplierFields(name, address, contact); err != nil {
		return err
	}

	s.Name = name
	s.Address = address
	s.Contact = contact
	s.Touch()

	return nil
}
