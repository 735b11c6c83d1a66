package inventory

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/inventaris/backend/internal/domain/shared"
)

// TransactionType represents the kind of stock movement. The wire literals
// are kept from the legacy system: "masuk" increases stock, "keluar"
// decreases it. No other value is recognized, regardless of case.
type TransactionType string

const (
	// TransactionTypeStockIn represents stock entering inventory
	TransactionTypeStockIn TransactionType = "masuk"
	// TransactionTypeStockOut represents stock leaving inventory
	TransactionTypeStockOut TransactionType = "keluar"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is one of the two recognized literals
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeStockIn || t == TransactionTypeStockOut
}

// IsStockIn returns true if this type increases stock
func (t TransactionType) IsStockIn() bool {
	return t == TransactionTypeStockIn
}

// IsStockOut returns true if this type decreases stock
func (t TransactionType) IsStockOut() bool {
	return t == TransactionTypeStockOut
}

// transactionDatePattern matches YYYY-MM-DD. The check is purely syntactic:
// calendrically invalid dates such as 2024-02-30 pass, matching the legacy
// system's behaviour. Date strings in this format sort chronologically.
var transactionDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidTransactionDate reports whether the date string matches YYYY-MM-DD
func IsValidTransactionDate(date string) bool {
	return transactionDatePattern.MatchString(date)
}

// ValidateTransactionDate checks the date format rule
func ValidateTransactionDate(date string) error {
	if !IsValidTransactionDate(date) {
		return shared.NewDomainError("INVALID_DATE", "Invalid transaction date")
	}
	return nil
}

// ValidateTransactionType checks the transaction kind rule
func ValidateTransactionType(kind string) error {
	if !TransactionType(kind).IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Invalid transaction type")
	}
	return nil
}

// ValidateTransactionQuantity checks the quantity positivity rule
func ValidateTransactionQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Transaction quantity must be a positive integer")
	}
	return nil
}

// StockTransaction represents an immutable record of a stock movement.
// Transactions are append-only: once created there is no update or delete
// path, and corrections are made with compensating transactions.
type StockTransaction struct {
	shared.BaseEntity
	ItemID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_tx_item" json:"itemId"`
	Quantity int64           `gorm:"not null" json:"quantity"`
	Kind     TransactionType `gorm:"type:varchar(10);not null;index:idx_stock_tx_kind" json:"kind"`
	Date     string          `gorm:"type:varchar(10);not null;index:idx_stock_tx_date" json:"date"`
}

// TableName returns the table name for GORM
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// NewStockTransaction creates a new stock transaction. Validation runs in
// the same order the processor reports failures: date, kind, quantity.
func NewStockTransaction(itemID uuid.UUID, quantity int64, date string, kind TransactionType) (*StockTransaction, error) {
	if err := ValidateTransactionDate(date); err != nil {
		return nil, err
	}
	if err := ValidateTransactionType(string(kind)); err != nil {
		return nil, err
	}
	if err := ValidateTransactionQuantity(quantity); err != nil {
		return nil, err
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}

	return &StockTransaction{
		BaseEntity: shared.NewBaseEntity(),
		ItemID:     itemID,
		Quantity:   quantity,
		Kind:       kind,
		Date:       date,
	}, nil
}

// SignedQuantity returns the quantity with sign based on transaction kind
func (t *StockTransaction) SignedQuantity() int64 {
	if t.Kind.IsStockOut() {
		return -t.Quantity
	}
	return t.Quantity
}
