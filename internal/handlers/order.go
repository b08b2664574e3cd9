// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fanstore/storefront-backend/internal/i18n"
	"github.com/fanstore/storefront-backend/internal/services"
	"github.com/fanstore/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService     *services.OrderService
	orderItemService *services.OrderItemService
}

func NewOrderHandler(orderService *services.OrderService, orderItemService *services.OrderItemService) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		orderItemService: orderItemService,
	}
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /orders/:id/items
func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	items, err := h.orderItemService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, items)
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, order)
}

// DELETE /orders/:id removes the order together with its items.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyOrderDeleted)
}
