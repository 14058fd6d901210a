package publication

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=publication_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, p *Publication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Publication, error)
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]*Publication, error)
}
