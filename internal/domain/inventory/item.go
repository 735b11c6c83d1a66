package inventory

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/inventaris/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultItemImageURL is used when no image is supplied on creation
const DefaultItemImageURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png"

var slugStripPattern = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// MakeSlug derives a URL slug from an item name: spaces become dashes,
// everything is lowercased, remaining non-alphanumerics are stripped.
func MakeSlug(name string) string {
	slug := strings.Join(strings.Split(name, " "), "-")
	slug = strings.ToLower(slug)
	return slugStripPattern.ReplaceAllString(slug, "")
}

// Item represents a tracked inventory item. Stock is the running quantity
// maintained at transaction-recording time; it is not derived by replaying
// the transaction history.
type Item struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:varchar(500);not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplierId"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"imageUrl"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new item with zero stock
func NewItem(name, description string, price decimal.Decimal, supplierID uuid.UUID, imageURL string) (*Item, error) {
	if name == "" || description == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Please provide all required fields")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price must be positive")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if imageURL == "" {
		imageURL = DefaultItemImageURL
	}

	return &Item{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Slug:        MakeSlug(name),
		Stock:       0,
		SupplierID:  supplierID,
		ImageURL:    imageURL,
	}, nil
}

// Update replaces the item's descriptive fields and regenerates the slug
func (i *Item) Update(name, description string, price decimal.Decimal, supplierID uuid.UUID, imageURL string) error {
	if name == "" || description == "" {
		return shared.NewDomainError("INVALID_INPUT", "Please provide all required fields")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Item price must be positive")
	}
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}

	i.Name = name
	i.Description = description
	i.Price = price
	i.Slug = MakeSlug(name)
	i.SupplierID = supplierID
	if imageURL != "" {
		i.ImageURL = imageURL
	}
	i.Touch()

	return nil
}

// CanFulfill returns true if the current stock covers the requested quantity
func (i *Item) CanFulfill(quantity int64) bool {
	return i.Stock >= quantity
}

// IncreaseStock adds quantity to the current stock
func (i *Item) IncreaseStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Transaction quantity must be a positive integer")
	}
	i.Stock += quantity
	i.Touch()
	return nil
}

// DecreaseStock removes quantity from the current stock. Fails without
// mutation when the requested quantity exceeds what is available.
func (i *Item) DecreaseStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Transaction quantity must be a positive integer")
	}
	if !i.CanFulfill(quantity) {
		return shared.ErrInsufficientStock
	}
	i.Stock -= quantity
	i.Touch()
	return nil
}

// ApplyMovement adjusts stock according to the transaction kind
func (i *Item) ApplyMovement(kind TransactionType, quantity int64) error {
	if kind.IsStockIn() {
		return i.IncreaseStock(quantity)
	}
	return i.DecreaseStock(quantity)
}
