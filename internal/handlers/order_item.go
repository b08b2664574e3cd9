// internal/handlers/order_item.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fanstore/storefront-backend/internal/i18n"
	"github.com/fanstore/storefront-backend/internal/services"
	"github.com/fanstore/storefront-backend/internal/utils"
)

type OrderItemHandler struct {
	orderItemService *services.OrderItemService
	pricingService   *services.PricingService
}

func NewOrderItemHandler(orderItemService *services.OrderItemService, pricingService *services.PricingService) *OrderItemHandler {
	return &OrderItemHandler{
		orderItemService: orderItemService,
		pricingService:   pricingService,
	}
}

// GET /orderItems
func (h *OrderItemHandler) ListOrderItems(c *gin.Context) {
	items, err := h.orderItemService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, items)
}

// GET /orderItems/:id
func (h *OrderItemHandler) GetOrderItem(c *gin.Context) {
	id, ok := parseID(c, "id", "order item")
	if !ok {
		return
	}

	item, err := h.orderItemService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, item)
}

// POST /orderItems/create
func (h *OrderItemHandler) CreateOrderItem(c *gin.Context) {
	var req services.CreateOrderItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.orderItemService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, item)
}

// POST /orderItems/quote
func (h *OrderItemHandler) QuoteOrderItem(c *gin.Context) {
	var req services.QuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	quote, err := h.pricingService.Quote(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, quote)
}

// PUT /orderItems/:id
func (h *OrderItemHandler) UpdateOrderItem(c *gin.Context) {
	id, ok := parseID(c, "id", "order item")
	if !ok {
		return
	}

	var req services.UpdateOrderItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.orderItemService.UpdateQuantity(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, item)
}

// DELETE /orderItems/:id
func (h *OrderItemHandler) DeleteOrderItem(c *gin.Context) {
	id, ok := parseID(c, "id", "order item")
	if !ok {
		return
	}

	if err := h.orderItemService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyOrderItemDeleted)
}
