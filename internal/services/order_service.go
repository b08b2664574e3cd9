// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fanstore/storefront-backend/internal/models"
	"github.com/fanstore/storefront-backend/internal/repository"
)

type OrderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	tx     repository.TxManager
}

type CreateOrderRequest struct {
	UserID int64 `json:"userId" validate:"required,min=1"`
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, tx repository.TxManager) *OrderService {
	return &OrderService{
		orders: orders,
		users:  users,
		tx:     tx,
	}
}

func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	exists, err := s.users.Exists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", req.UserID, err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	order := &models.Order{UserID: req.UserID}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Delete removes the order and every item referencing it in one
// transaction, so no reader sees the order gone while its items remain.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	var removed int64
	err := s.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		n, err := r.OrderItems().DeleteByOrderID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete items of order %d: %w", id, err)
		}
		removed = n

		if err := r.Orders().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to delete order %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":      id,
		"items_removed": removed,
	}).Info("Order deleted")
	return nil
}
