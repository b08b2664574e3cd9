// internal/services/pricing_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fanstore/storefront-backend/internal/repository"
)

// PricingService computes the price-at-purchase snapshot for an order item.
type PricingService struct {
	products   repository.ProductRepository
	tagPricing *TagPricingService
}

type QuoteRequest struct {
	ProductID int64   `json:"productId" validate:"required,min=1"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	TagIDs    []int64 `json:"tagIds"`
}

type Quote struct {
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	Adjustment decimal.Decimal `json:"adjustment"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

func NewPricingService(products repository.ProductRepository, tagPricing *TagPricingService) *PricingService {
	return &PricingService{
		products:   products,
		tagPricing: tagPricing,
	}
}

// PriceAtPurchase returns product price plus the tag adjustment total. The
// result is a per-unit price; quantity does not change it.
func (s *PricingService) PriceAtPurchase(ctx context.Context, productID int64, quantity int, tagIDs []int64) (decimal.Decimal, error) {
	q, err := s.Quote(ctx, &QuoteRequest{ProductID: productID, Quantity: quantity, TagIDs: tagIDs})
	if err != nil {
		return decimal.Zero, err
	}
	return q.UnitPrice, nil
}

func (s *PricingService) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", req.ProductID, err)
	}

	adjustment, err := s.tagPricing.TotalAdjustment(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	unit := product.Price.Add(adjustment)
	return &Quote{
		ProductID:  product.ID,
		Quantity:   req.Quantity,
		BasePrice:  product.Price,
		Adjustment: adjustment,
		UnitPrice:  unit,
		LineTotal:  unit.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}, nil
}
