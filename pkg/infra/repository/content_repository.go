package repository

import (
	"context"
	"errors"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/content"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) content.Repository {
	return &contentRepository{
		db: db,
	}
}

func (r *contentRepository) Save(ctx context.Context, c *content.GeneratedContent) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contentRepository) GetByID(ctx context.Context, id uuid.UUID) (*content.GeneratedContent, error) {
	var c content.GeneratedContent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(content.EntityName, id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) List(ctx context.Context, offset, limit int) ([]*content.GeneratedContent, error) {
	var contents []*content.GeneratedContent
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}
