package repository

import (
	"context"
	"errors"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/analysis"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.Repository {
	return &analysisRepository{
		db: db,
	}
}

func (r *analysisRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Summary").
		Preload("Sentiments")
}

func (r *analysisRepository) GetByHash(ctx context.Context, hash string) (*analysis.Analysis, error) {
	var a analysis.Analysis
	if err := r.withChildren(ctx).Where("content_hash = ?", hash).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(analysis.EntityName, uuid.Nil)
		}
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*analysis.Analysis, error) {
	var a analysis.Analysis
	if err := r.withChildren(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(analysis.EntityName, id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) List(ctx context.Context, offset, limit int) ([]*analysis.Analysis, error) {
	var list []*analysis.Analysis
	if err := r.withChildren(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *analysisRepository) Save(ctx context.Context, a *analysis.Analysis) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keywords, summary, sentiments := a.Keywords, a.Summary, a.Sentiments

		if err := tx.Omit("Keywords", "Summary", "Sentiments").Save(a).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&analysis.Keyword{}, &analysis.Summary{}, &analysis.SentimentAnalysis{}} {
			if err := tx.Where("analysis_id = ?", a.ID).Delete(child).Error; err != nil {
				return err
			}
		}

		for i := range keywords {
			keywords[i].ID = uuid.Nil
			keywords[i].AnalysisID = a.ID
		}
		if len(keywords) > 0 {
			if err := tx.Create(&keywords).Error; err != nil {
				return err
			}
		}
		if summary != nil {
			summary.ID = uuid.Nil
			summary.AnalysisID = a.ID
			if err := tx.Create(summary).Error; err != nil {
				return err
			}
		}
		for i := range sentiments {
			sentiments[i].ID = uuid.Nil
			sentiments[i].AnalysisID = a.ID
		}
		if len(sentiments) > 0 {
			if err := tx.Create(&sentiments).Error; err != nil {
				return err
			}
		}
		a.Keywords, a.Summary, a.Sentiments = keywords, summary, sentiments
		return nil
	})
}
