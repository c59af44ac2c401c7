package app

import (
	"log/slog"

	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Shared dependencies
	Progress usecase.ProgressSink
	Prompter usecase.ConfirmationPrompter
	Selector usecase.NetworkSelector

	// Use cases
	DeployToken     *usecase.DeployToken
	VerifyContract  *usecase.VerifyContract
	ListNetworks    *usecase.ListNetworks
	ShowDeployment  *usecase.ShowDeployment
	ListDeployments *usecase.ListDeployments
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	progress usecase.ProgressSink,
	prompter usecase.ConfirmationPrompter,
	selector usecase.NetworkSelector,
	deployToken *usecase.DeployToken,
	verifyContract *usecase.VerifyContract,
	listNetworks *usecase.ListNetworks,
	showDeployment *usecase.ShowDeployment,
	listDeployments *usecase.ListDeployments,
) *App {
	return &App{
		Config:          cfg,
		Logger:          logger,
		Progress:        progress,
		Prompter:        prompter,
		Selector:        selector,
		DeployToken:     deployToken,
		VerifyContract:  verifyContract,
		ListNetworks:    listNetworks,
		ShowDeployment:  showDeployment,
		ListDeployments: listDeployments,
	}
}
