//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/usvp-token/usvp-deploy/internal/adapters"
	"github.com/usvp-token/usvp-deploy/internal/config"
	"github.com/usvp-token/usvp-deploy/internal/logging"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewVerifyContract,
		usecase.NewDeployToken,
		usecase.NewListNetworks,
		usecase.NewShowDeployment,
		usecase.NewListDeployments,

		// App
		NewApp,
	)
	return nil, nil
}
