package analysis

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=analysis_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// GetByHash returns a not-found error when no analysis has this content hash.
	GetByHash(ctx context.Context, hash string) (*Analysis, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Analysis, error)
	List(ctx context.Context, offset, limit int) ([]*Analysis, error)
	// Save inserts or updates the analysis and replaces its keyword, summary
	// and sentiment rows.
	Save(ctx context.Context, a *Analysis) error
}
