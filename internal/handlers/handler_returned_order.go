package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// returnedOrderHandler handles HTTP requests related to returned goods.
type returnedOrderHandler struct {
	returnedOrderService portssvc.ReturnedOrderSvcFacade
}

// RegisterReturnedOrderRoutes registers returned-order routes, nested under their customer for
// creation and listing.
func RegisterReturnedOrderRoutes(rg *gin.RouterGroup, returnedOrderService portssvc.ReturnedOrderSvcFacade) {
	registerValidators()
	h := &returnedOrderHandler{returnedOrderService: returnedOrderService}

	rg.POST("/customers/:customerID/returned-orders", h.createReturnedOrder)
	rg.GET("/customers/:customerID/returned-orders", h.listReturnedOrders)

	returns := rg.Group("/returned-orders")
	{
		returns.GET("/:returnedOrderID", h.getReturnedOrder)
		returns.PUT("/:returnedOrderID", h.updateReturnedOrder)
		returns.DELETE("/:returnedOrderID", h.deleteReturnedOrder)
	}
}

// createReturnedOrder godoc
// @Summary Record returned goods
// @Description Records goods an active customer brought back
// @Tags returned-orders
// @Accept  json
// @Produce  json
// @Param   customerID path int true "Customer ID"
// @Param   returnedOrder body dto.CreateReturnedOrderRequest true "Return details"
// @Success 201 {object} dto.ReturnedOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive customer"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse "Failed to record returned order"
// @Security BearerAuth
// @Router /customers/{customerID}/returned-orders [post]
func (h *returnedOrderHandler) createReturnedOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := pathID(c, "customerID")
	if !ok {
		return
	}
	var req dto.CreateReturnedOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReturnedOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	returned, err := h.returnedOrderService.CreateReturnedOrder(c.Request.Context(), customerID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record returned order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReturnedOrderResponse(returned))
}

// listReturnedOrders godoc
// @Summary List a customer's returned orders
// @Tags returned-orders
// @Produce  json
// @Param   customerID path int true "Customer ID"
// @Success 200 {array} dto.ReturnedOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid customer ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse "Failed to list returned orders"
// @Security BearerAuth
// @Router /customers/{customerID}/returned-orders [get]
func (h *returnedOrderHandler) listReturnedOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := pathID(c, "customerID")
	if !ok {
		return
	}

	returns, err := h.returnedOrderService.ListReturnedOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list returned orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnedOrderResponses(returns))
}

// getReturnedOrder godoc
// @Summary Get a returned order by ID
// @Tags returned-orders
// @Produce  json
// @Param   returnedOrderID path int true "Returned order ID"
// @Success 200 {object} dto.ReturnedOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid returned order ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Returned order not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve returned order"
// @Security BearerAuth
// @Router /returned-orders/{returnedOrderID} [get]
func (h *returnedOrderHandler) getReturnedOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnedOrderID, ok := pathID(c, "returnedOrderID")
	if !ok {
		return
	}

	returned, err := h.returnedOrderService.GetReturnedOrderByID(c.Request.Context(), returnedOrderID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve returned order")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnedOrderResponse(returned))
}

// updateReturnedOrder godoc
// @Summary Update a returned order
// @Tags returned-orders
// @Accept  json
// @Produce  json
// @Param   returnedOrderID path int true "Returned order ID"
// @Param   returnedOrder body dto.UpdateReturnedOrderRequest true "Fields to update"
// @Success 200 {object} dto.ReturnedOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Returned order not found"
// @Failure 500 {object} ErrorResponse "Failed to update returned order"
// @Security BearerAuth
// @Router /returned-orders/{returnedOrderID} [put]
func (h *returnedOrderHandler) updateReturnedOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnedOrderID, ok := pathID(c, "returnedOrderID")
	if !ok {
		return
	}
	var req dto.UpdateReturnedOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReturnedOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	returned, err := h.returnedOrderService.UpdateReturnedOrder(c.Request.Context(), returnedOrderID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update returned order")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnedOrderResponse(returned))
}

// deleteReturnedOrder godoc
// @Summary Delete a returned order
// @Tags returned-orders
// @Param   returnedOrderID path int true "Returned order ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid returned order ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Returned order not found"
// @Failure 500 {object} ErrorResponse "Failed to delete returned order"
// @Security BearerAuth
// @Router /returned-orders/{returnedOrderID} [delete]
func (h *returnedOrderHandler) deleteReturnedOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnedOrderID, ok := pathID(c, "returnedOrderID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.returnedOrderService.DeleteReturnedOrder(c.Request.Context(), returnedOrderID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete returned order")
		return
	}
	c.Status(http.StatusNoContent)
}
