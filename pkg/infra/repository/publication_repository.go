package repository

import (
	"context"
	"errors"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/publication"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type publicationRepository struct {
	db *gorm.DB
}

func NewPublicationRepository(db *gorm.DB) publication.Repository {
	return &publicationRepository{
		db: db,
	}
}

func (r *publicationRepository) Save(ctx context.Context, p *publication.Publication) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *publicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	var p publication.Publication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(publication.EntityName, id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepository) ListByContent(ctx context.Context, contentID uuid.UUID) ([]*publication.Publication, error) {
	var pubs []*publication.Publication
	if err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}
