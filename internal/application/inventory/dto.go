package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventaris/backend/internal/domain/inventory"
)

// RecordStockTransactionRequest represents a request to record a stock movement
type RecordStockTransactionRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int64  `json:"quantity"`
	Kind     string `json:"kind" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// StockTransactionResponse represents a stock transaction in API responses
type StockTransactionResponse struct {
	ID        uuid.UUID     `json:"id"`
	ItemID    uuid.UUID     `json:"itemId"`
	Quantity  int64         `json:"quantity"`
	Kind      string        `json:"kind"`
	Date      string        `json:"date"`
	Item      *ItemResponse `json:"item,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RecordStockTransactionResponse carries the created transaction and the
// item's stock level after the movement was applied
type RecordStockTransactionResponse struct {
	Transaction StockTransactionResponse `json:"transaction"`
	NewStock    int64                    `json:"newStock"`
}

// ListStockTransactionsRequest represents filter options for the transaction list
type ListStockTransactionsRequest struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	Kind       string `form:"kind" binding:"omitempty,oneof=masuk keluar"`
	ItemID     string `form:"itemId"`
	SearchTerm string `form:"searchTerm"`
}

// ListStockTransactionsResponse represents a page of transactions.
// TotalCount is the count of all stored transactions, not the filtered count.
type ListStockTransactionsResponse struct {
	Transactions []StockTransactionResponse `json:"transactions"`
	TotalCount   int64                      `json:"totalCount"`
}

// PeriodReportRequest represents the query parameters of the aggregate endpoints.
// Month and Year default to the current date when omitted.
type PeriodReportRequest struct {
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year   int    `form:"year" binding:"omitempty,min=1"`
	ItemID string `form:"itemId"`
}

// PeriodReportResponse represents the aggregate over a month or year window
type PeriodReportResponse struct {
	TotalStockIn  int64                      `json:"totalStockIn"`
	TotalStockOut int64                      `json:"totalStockOut"`
	EndingStock   int64                      `json:"endingStock"`
	Transactions  []StockTransactionResponse `json:"transactions"`
}

// CreateItemRequest represents a request to create an item
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  string          `json:"supplierId" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
}

// UpdateItemRequest represents a request to update an item
type UpdateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  string          `json:"supplierId" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Slug        string          `json:"slug"`
	Stock       int64           `json:"stock"`
	SupplierID  uuid.UUID       `json:"supplierId"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListItemsRequest represents filter options for the item list
type ListItemsRequest struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	Slug       string `form:"slug"`
	SearchTerm string `form:"searchTerm"`
}

// ListItemsResponse represents a page of items with dashboard totals
type ListItemsResponse struct {
	Items          []ItemResponse `json:"items"`
	TotalItems     int64          `json:"totalItems"`
	LastMonthItems int64          `json:"lastMonthItems"`
}

func toItemResponse(item *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Slug:        item.Slug,
		Stock:       item.Stock,
		SupplierID:  item.SupplierID,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toStockTransactionResponse(tx *inventory.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		ID:        tx.ID,
		ItemID:    tx.ItemID,
		Quantity:  tx.Quantity,
		Kind:      string(tx.Kind),
		Date:      tx.Date,
		CreatedAt: tx.CreatedAt,
	}
}

func toStockTransactionResponses(txs []inventory.StockTransaction) []StockTransactionResponse {
	responses := make([]StockTransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, toStockTransactionResponse(&txs[i]))
	}
	return responses
}
