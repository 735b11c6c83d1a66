package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/inventaris/backend/internal/application/inventory"
)

// ItemHandler handles item catalogue endpoints
type ItemHandler struct {
	BaseHandler
	itemService *inventoryapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *inventoryapp.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// Create registers a new item with zero opening stock
func (h *ItemHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// List returns a filtered page of items with dashboard totals
func (h *ItemHandler) List(c *gin.Context) {
	var req inventoryapp.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.itemService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update replaces an item's descriptive fields, preserving its stock level
func (h *ItemHandler) Update(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), actor, c.Param("itemId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes an item together with its ledger entries
func (h *ItemHandler) Delete(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), actor, c.Param("itemId")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Item has been deleted"})
}
