// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/fanstore/storefront-backend/internal/models"
)

// ErrNotFound is returned by every repository when the requested row does
// not exist. gorm.ErrRecordNotFound never leaves this package.
var ErrNotFound = errors.New("record not found")

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByIDWithTags(ctx context.Context, id int64) (*models.Product, error)
}

type TagRepository interface {
	// FindByIDs returns the tags whose id is in ids. Unknown ids are ignored.
	FindByIDs(ctx context.Context, ids []int64) ([]models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
}

type UserRepository interface {
	// FindByIDWithOrders preloads the user's league and orders with their items.
	FindByIDWithOrders(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type OrderItemRepository interface {
	Create(ctx context.Context, item *models.OrderItem) error
	FindByID(ctx context.Context, id int64) (*models.OrderItem, error)
	FindAll(ctx context.Context) ([]models.OrderItem, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	UpdateQuantity(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, id int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) (int64, error)
}

// TxRepos are the repositories bound to one open transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// TxManager hides begin/commit/rollback from the services.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
