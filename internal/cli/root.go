package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/usvp-token/usvp-deploy/internal/adapters/progress"
	"github.com/usvp-token/usvp-deploy/internal/app"
	"github.com/usvp-token/usvp-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "usvp",
		Short: "Deploy and verify the USVP Token",
		Long: `usvp deploys the USVP Token contract from its Hardhat artifacts, checks
the role assignment, verifies the source on the network's block explorer and
records the deployment in deployments.json.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsApp(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with every flag of the command being run
			v := config.SetupViper(projectRoot, cmd)

			sink := progress.NewStageProgress(cmd.ErrOrStderr(), !v.GetBool("non_interactive"))

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			cmd.SetContext(ctx)
			attachTimeout(cmd, appInstance.Config.Timeout)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (hardhat, localhost, sepolia, bsctest, mainnet, bsc)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout for the command (default 10m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "management"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "management"
	rootCmd.AddCommand(showCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// Execute runs root under a context that is cancelled when it returns,
// whether the command succeeded or not
func Execute(ctx context.Context, root *cobra.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return root.ExecuteContext(ctx)
}

// attachTimeout bounds the command context by d. PostRun only runs on success;
// the failure path is released by the parent context from Execute.
func attachTimeout(cmd *cobra.Command, d time.Duration) {
	if d <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), d)
	cmd.PostRun = func(*cobra.Command, []string) {
		cancel()
	}
	cmd.SetContext(ctx)
}

// FormatFatal renders the error that ends the process
func FormatFatal(err error) string {
	return color.New(color.FgRed).Sprintf("❌ Error: %v", err)
}

// stopProgress ends a spinner left running by a failed use case
func stopProgress(a *app.App) {
	if s, ok := a.Progress.(interface{ Stop() }); ok {
		s.Stop()
	}
}
