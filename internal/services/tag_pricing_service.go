// internal/services/tag_pricing_service.go
package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fanstore/storefront-backend/internal/repository"
)

// TagPricingService resolves customization tags to a price adjustment.
type TagPricingService struct {
	tags repository.TagRepository
}

func NewTagPricingService(tags repository.TagRepository) *TagPricingService {
	return &TagPricingService{tags: tags}
}

// TotalAdjustment sums price_adjustment once per occurrence in tagIDs, so a
// tag selected through two slots counts twice. Ids without a matching tag
// add nothing.
func (s *TagPricingService) TotalAdjustment(ctx context.Context, tagIDs []int64) (decimal.Decimal, error) {
	total := decimal.Zero
	if len(tagIDs) == 0 {
		return total, nil
	}

	tags, err := s.tags.FindByIDs(ctx, tagIDs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load tags: %w", err)
	}

	adjustments := make(map[int64]decimal.Decimal, len(tags))
	for _, tag := range tags {
		adjustments[tag.ID] = tag.PriceAdjustment
	}

	for _, id := range tagIDs {
		if adj, ok := adjustments[id]; ok {
			total = total.Add(adj)
		}
	}

	return total, nil
}
