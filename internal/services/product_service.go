// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fanstore/storefront-backend/internal/models"
	"github.com/fanstore/storefront-backend/internal/repository"
)

// ProductService serves read-only catalog lookups.
type ProductService struct {
	products repository.ProductRepository
	tags     repository.TagRepository
}

func NewProductService(products repository.ProductRepository, tags repository.TagRepository) *ProductService {
	return &ProductService{
		products: products,
		tags:     tags,
	}
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.FindByIDWithTags(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
