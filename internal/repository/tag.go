// internal/repository/tag.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/models"
)

type TagGormRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagGormRepository {
	return &TagGormRepository{db: db}
}

// FindByIDs issues a single IN query over the distinct ids.
func (r *TagGormRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	distinct := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", distinct).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagGormRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
