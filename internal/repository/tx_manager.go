// internal/repository/tx_manager.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/database"
)

type txReposGorm struct {
	orders     OrderRepository
	orderItems OrderItemRepository
}

func (r *txReposGorm) Orders() OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() OrderItemRepository { return r.orderItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r TxRepos) error) error {
	return database.WithTransaction(tm.db.WithContext(ctx), func(tx *gorm.DB) error {
		// repositories are rebuilt on the transaction handle
		return fn(&txReposGorm{
			orders:     NewOrderRepository(tx),
			orderItems: NewOrderItemRepository(tx),
		})
	})
}
