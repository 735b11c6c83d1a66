package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inventaris/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and dashes spaces", "Steel Bolt M8", "steel-bolt-m8"},
		{"strips punctuation", "Paint (Red) 5L!", "paint-red-5l"},
		{"already clean", "widget", "widget"},
		{"multiple spaces keep dashes", "a  b", "a--b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeSlug(tt.in))
		})
	}
}

func TestNewItem(t *testing.T) {
	supplierID := uuid.New()

	t.Run("creates item with zero stock and generated slug", func(t *testing.T) {
		item, err := NewItem("Steel Bolt M8", "Box of 100", decimal.NewFromFloat(12.50), supplierID, "")
		require.NoError(t, err)

		assert.Equal(t, int64(0), item.Stock)
		assert.Equal(t, "steel-bolt-m8", item.Slug)
		assert.Equal(t, DefaultItemImageURL, item.ImageURL)
		assert.Equal(t, supplierID, item.SupplierID)
	})

	t.Run("requires all fields", func(t *testing.T) {
		_, err := NewItem("", "desc", decimal.NewFromInt(1), supplierID, "")
		assert.Error(t, err)

		_, err = NewItem("name", "", decimal.NewFromInt(1), supplierID, "")
		assert.Error(t, err)

		_, err = NewItem("name", "desc", decimal.NewFromInt(1), uuid.Nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewItem("name", "desc", decimal.Zero, supplierID, "")
		assert.Error(t, err)
	})
}

func TestItem_StockMovements(t *testing.T) {
	newItem := func(t *testing.T, stock int64) *Item {
		t.Helper()
		item, err := NewItem("Widget", "desc", decimal.NewFromInt(5), uuid.New(), "")
		require.NoError(t, err)
		item.Stock = stock
		return item
	}

	t.Run("stock-in adds quantity", func(t *testing.T) {
		item := newItem(t, 10)
		require.NoError(t, item.ApplyMovement(TransactionTypeStockIn, 7))
		assert.Equal(t, int64(17), item.Stock)
	})

	t.Run("stock-out subtracts quantity", func(t *testing.T) {
		item := newItem(t, 10)
		require.NoError(t, item.ApplyMovement(TransactionTypeStockOut, 7))
		assert.Equal(t, int64(3), item.Stock)
	})

	t.Run("stock-out of the full balance empties the item", func(t *testing.T) {
		item := newItem(t, 10)
		require.NoError(t, item.DecreaseStock(10))
		assert.Equal(t, int64(0), item.Stock)
	})

	t.Run("stock-out beyond balance fails without mutation", func(t *testing.T) {
		item := newItem(t, 10)
		err := item.DecreaseStock(11)
		require.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, int64(10), item.Stock)
	})

	t.Run("non-positive quantities are rejected", func(t *testing.T) {
		item := newItem(t, 10)
		assert.Error(t, item.IncreaseStock(0))
		assert.Error(t, item.DecreaseStock(-1))
		assert.Equal(t, int64(10), item.Stock)
	})
}

func TestItem_Update(t *testing.T) {
	item, err := NewItem("Old Name", "desc", decimal.NewFromInt(2), uuid.New(), "")
	require.NoError(t, err)
	item.Stock = 42

	newSupplier := uuid.New()
	require.NoError(t, item.Update("New Name", "new desc", decimal.NewFromInt(3), newSupplier, "http://img"))

	assert.Equal(t, "new-name", item.Slug)
	assert.Equal(t, newSupplier, item.SupplierID)
	assert.Equal(t, "http://img", item.ImageURL)
	// Stock is owned by the transaction processor, never by item updates.
	assert.Equal(t, int64(42), item.Stock)
}
