package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		record := &models.DeploymentRecord{Address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"}
		repo := new(MockDeploymentRepository)
		repo.On("GetDeployment", ctx, "sepolia").Return(record, nil)

		progress := &MockProgressSink{}
		result, err := usecase.NewShowDeployment(repo, progress).Run(ctx, usecase.ShowDeploymentParams{Network: "sepolia"})

		require.NoError(t, err)
		assert.Equal(t, "sepolia", result.Network)
		assert.Same(t, record, result.Record)
		assert.Equal(t, []string{"loading", "complete"}, progress.stages())
	})

	t.Run("missing record", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		repo.On("GetDeployment", ctx, "bsc").Return(nil, fmt.Errorf("%w: bsc", domain.ErrNotFound))

		_, err := usecase.NewShowDeployment(repo, &MockProgressSink{}).Run(ctx, usecase.ShowDeploymentParams{Network: "bsc"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("network required", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		_, err := usecase.NewShowDeployment(repo, &MockProgressSink{}).Run(ctx, usecase.ShowDeploymentParams{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetDeployment")
	})
}
