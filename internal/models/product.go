// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	CategoryID *int64          `json:"category_id" gorm:"index"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Category   *Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags       []Tag       `json:"tags,omitempty" gorm:"many2many:product_tags"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:ProductID"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

type Review struct {
	BaseModel
	UserID    int64  `json:"user_id" gorm:"not null;index"`
	ProductID int64  `json:"product_id" gorm:"not null;index"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Body      string `json:"body" gorm:"type:text"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
