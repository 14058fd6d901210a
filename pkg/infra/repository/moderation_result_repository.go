package repository

import (
	"context"
	"errors"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/moderation_result"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type moderationResultRepository struct {
	db *gorm.DB
}

func NewModerationResultRepository(db *gorm.DB) moderation_result.Repository {
	return &moderationResultRepository{
		db: db,
	}
}

func (r *moderationResultRepository) Save(ctx context.Context, result *moderation_result.ModerationResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *moderationResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*moderation_result.ModerationResult, error) {
	var result moderation_result.ModerationResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(moderation_result.EntityName, id)
		}
		return nil, err
	}
	return &result, nil
}
