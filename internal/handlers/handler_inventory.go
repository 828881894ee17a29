package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// RegisterInventoryRoutes registers the stock list routes.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	registerValidators()
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/:itemID", h.getItem)
		inventory.PUT("/:itemID", h.updateItem)
		inventory.DELETE("/:itemID", h.deleteItem)
	}
}

// createItem godoc
// @Summary Add an inventory item
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "SKU already in use"
// @Failure 500 {object} ErrorResponse "Failed to create inventory item"
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInventoryItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create inventory item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory
// @Description Lists stocked items ordered by name
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list inventory"
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, next, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: dto.ToInventoryItemResponses(items), NextToken: next})
}

// getItem godoc
// @Summary Get an inventory item
// @Tags inventory
// @Produce  json
// @Param   itemID path int true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve inventory item"
// @Security BearerAuth
// @Router /inventory/{itemID} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   itemID path int true "Item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update inventory item"
// @Security BearerAuth
// @Router /inventory/{itemID} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Param   itemID path int true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete inventory item"
// @Security BearerAuth
// @Router /inventory/{itemID} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
