package content

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=content_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, c *GeneratedContent) error
	GetByID(ctx context.Context, id uuid.UUID) (*GeneratedContent, error)
	// List returns contents newest first.
	List(ctx context.Context, offset, limit int) ([]*GeneratedContent, error)
}
