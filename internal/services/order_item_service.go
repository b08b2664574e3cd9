// internal/services/order_item_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fanstore/storefront-backend/internal/models"
	"github.com/fanstore/storefront-backend/internal/repository"
)

// OrderItemService owns the order item lifecycle:
// created -> [quantity updated]* -> deleted.
type OrderItemService struct {
	items   repository.OrderItemRepository
	orders  repository.OrderRepository
	pricing *PricingService
}

type CreateOrderItemRequest struct {
	OrderID   int64   `json:"orderId" validate:"required,min=1"`
	ProductID int64   `json:"productId" validate:"required,min=1"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	TagIDs    []int64 `json:"tagIds"`
}

type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewOrderItemService(items repository.OrderItemRepository, orders repository.OrderRepository, pricing *PricingService) *OrderItemService {
	return &OrderItemService{
		items:   items,
		orders:  orders,
		pricing: pricing,
	}
}

func (s *OrderItemService) List(ctx context.Context) ([]models.OrderItem, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

func (s *OrderItemService) ListByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	exists, err := s.orders.Exists(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check order %d: %w", orderID, err)
	}
	if !exists {
		return nil, ErrOrderNotFound
	}

	items, err := s.items.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items of order %d: %w", orderID, err)
	}
	return items, nil
}

func (s *OrderItemService) Get(ctx context.Context, id int64) (*models.OrderItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("failed to load order item %d: %w", id, err)
	}
	return item, nil
}

func (s *OrderItemService) Create(ctx context.Context, req *CreateOrderItemRequest) (*models.OrderItem, error) {
	exists, err := s.orders.Exists(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check order %d: %w", req.OrderID, err)
	}
	if !exists {
		return nil, ErrOrderNotFound
	}

	price, err := s.pricing.PriceAtPurchase(ctx, req.ProductID, req.Quantity, req.TagIDs)
	if err != nil {
		return nil, err
	}

	orderID := req.OrderID
	item := &models.OrderItem{
		OrderID:         &orderID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		PriceAtPurchase: price,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_item_id":     item.ID,
		"order_id":          orderID,
		"product_id":        item.ProductID,
		"price_at_purchase": item.PriceAtPurchase.String(),
	}).Debug("Order item created")

	return item, nil
}

// UpdateQuantity changes only the quantity. PriceAtPurchase stays as it was
// at creation. Concurrent writers to the same item are last-write-wins.
func (s *OrderItemService) UpdateQuantity(ctx context.Context, id int64, req *UpdateOrderItemRequest) (*models.OrderItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Quantity = req.Quantity
	if err := s.items.UpdateQuantity(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("failed to update order item %d: %w", id, err)
	}

	return item, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderItemNotFound
		}
		return fmt.Errorf("failed to delete order item %d: %w", id, err)
	}
	return nil
}
