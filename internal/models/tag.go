// internal/models/tag.go
package models

import (
	"github.com/shopspring/decimal"
)

// Tag is a customization option (size, colour, name print...) whose
// PriceAdjustment is added to a product's base price when selected.
type Tag struct {
	BaseModel
	Label           string          `json:"label" gorm:"size:100;not null"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment" gorm:"type:decimal(10,2);not null;default:0"`

	Products []Product `json:"products,omitempty" gorm:"many2many:product_tags"`
}

// ProductTag is the join row between Product and Tag.
type ProductTag struct {
	ProductID int64 `json:"product_id" gorm:"primaryKey"`
	TagID     int64 `json:"tag_id" gorm:"primaryKey"`
}
