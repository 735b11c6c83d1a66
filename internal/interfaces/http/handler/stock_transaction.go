package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/inventaris/backend/internal/application/inventory"
)

// StockTransactionHandler handles stock movement endpoints
type StockTransactionHandler struct {
	BaseHandler
	transactionService *inventoryapp.StockTransactionService
}

// NewStockTransactionHandler creates a new StockTransactionHandler
func NewStockTransactionHandler(transactionService *inventoryapp.StockTransactionService) *StockTransactionHandler {
	return &StockTransactionHandler{
		transactionService: transactionService,
	}
}

// Record appends a stock movement to the ledger and applies it to the
// item's stock level
func (h *StockTransactionHandler) Record(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.RecordStockTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.transactionService.Record(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns a filtered page of the transaction ledger
func (h *StockTransactionHandler) List(c *gin.Context) {
	var req inventoryapp.ListStockTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.transactionService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AggregateByMonth returns movement totals and the ledger slice for one
// calendar month, defaulting to the current month
func (h *StockTransactionHandler) AggregateByMonth(c *gin.Context) {
	var req inventoryapp.PeriodReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.transactionService.AggregateByMonth(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AggregateByYear returns movement totals and the ledger slice for one
// calendar year, defaulting to the current year
func (h *StockTransactionHandler) AggregateByYear(c *gin.Context) {
	var req inventoryapp.PeriodReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.transactionService.AggregateByYear(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
