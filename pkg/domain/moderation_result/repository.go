package moderation_result

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=moderation_result_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, result *ModerationResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*ModerationResult, error)
}
