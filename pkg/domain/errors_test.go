package domain_test

import (
	"fmt"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	id := uuid.New()
	err := domain.NewNotFoundError("analysis", id)

	assert.True(t, domain.IsNotFoundError(err))
	assert.True(t, domain.IsNotFoundError(fmt.Errorf("load: %w", err)))
	assert.False(t, domain.IsNotFoundError(domain.ErrEmptyContent))
	assert.False(t, domain.IsNotFoundError(nil))
	assert.Contains(t, err.Error(), id.String())
}

func TestNotFoundError_Details(t *testing.T) {
	err := domain.NewNotFoundError("campaign_analysis", uuid.Nil)
	assert.Equal(t, "no campaign_analysis found", err.Error())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	assert.ErrorAs(t, fmt.Errorf("wrap: %w", err), &nf)
	assert.Equal(t, "campaign_analysis", nf.Entity)
}
