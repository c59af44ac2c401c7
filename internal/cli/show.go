package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/usvp-token/usvp-deploy/internal/app"
	"github.com/usvp-token/usvp-deploy/internal/cli/render"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [network]",
		Short: "Show the deployment recorded for a network",
		Long: `Show the deployment record stored for a network.

Without an argument an interactive fuzzy selector lists the recorded
networks; in non-interactive mode the --network flag is used.`,
		Example: `  usvp show sepolia
  usvp show bsc --format json
  usvp show`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			network, err := showNetwork(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ShowDeployment.Run(cmd.Context(), usecase.ShowDeploymentParams{Network: network})
			stopProgress(app)
			if err != nil {
				return err
			}

			return render.NewDeploymentRenderer(cmd.OutOrStdout()).RenderDeployment(result, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", render.FormatText, "Output format: text, json or yaml")

	return cmd
}

// showNetwork picks the network to show: the argument, a prompt, or --network
func showNetwork(cmd *cobra.Command, a *app.App, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if a.Config.NonInteractive {
		return a.Config.Network.Name, nil
	}

	list, err := a.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{})
	stopProgress(a)
	if err != nil {
		return "", err
	}
	if len(list.Deployments) == 0 {
		return "", fmt.Errorf("no deployments recorded in %s", a.Config.DeploymentsFile)
	}

	return a.Selector.SelectNetwork(list.Networks(), "Select network")
}
