// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	UserID int64 `json:"user_id" gorm:"not null;index"`

	// Relationships
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is one product placed in an order. PriceAtPurchase is the
// per-unit price fixed at creation and never recomputed afterwards.
type OrderItem struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         *int64          `json:"order_id" gorm:"index"`
	ProductID       int64           `json:"product_id" gorm:"not null;index"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// LineTotal returns the per-unit snapshot multiplied by quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
