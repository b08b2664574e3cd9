// internal/repository/user.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByIDWithOrders(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("League").
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("orders.id asc") }).
		Preload("Orders.OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id asc") }).
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
