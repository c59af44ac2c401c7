package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct{}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []models.NetworkDeployment
}

// Networks returns the network keys that have a record, in list order
func (r *DeploymentListResult) Networks() []string {
	names := make([]string, 0, len(r.Deployments))
	for _, d := range r.Deployments {
		names = append(names, d.Network)
	}
	return names
}

// ListDeployments is the use case for listing every stored deployment record
type ListDeployments struct {
	repo DeploymentRepository
	sink ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(repo DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		repo: repo,
		sink: sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments",
		Spinner: true,
	})

	deployments, err := uc.repo.ListDeployments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	// newest first, then by network name
	sort.SliceStable(deployments, func(i, j int) bool {
		ti, tj := deployments[i].Record.DeploymentTime, deployments[j].Record.DeploymentTime
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return deployments[i].Network < deployments[j].Network
	})

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: fmt.Sprintf("Found %d deployments", len(deployments)),
	})

	return &DeploymentListResult{Deployments: deployments}, nil
}
