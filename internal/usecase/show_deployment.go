package usecase

import (
	"context"
	"fmt"

	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	// Network is the key the record is stored under
	Network string
}

// ShowDeployment is the use case for showing a stored deployment record
type ShowDeployment struct {
	repo DeploymentRepository
	sink ProgressSink
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(repo DeploymentRepository, sink ProgressSink) *ShowDeployment {
	return &ShowDeployment{
		repo: repo,
		sink: sink,
	}
}

// Run executes the show deployment use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*models.NetworkDeployment, error) {
	if params.Network == "" {
		return nil, fmt.Errorf("network name is required")
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployment record",
		Spinner: true,
	})

	record, err := uc.repo.GetDeployment(ctx, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to get deployment for %s: %w", params.Network, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Deployment loaded",
	})

	return &models.NetworkDeployment{Network: params.Network, Record: record}, nil
}
