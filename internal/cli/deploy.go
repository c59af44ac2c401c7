package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/usvp-token/usvp-deploy/internal/cli/render"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the USVP Token",
		Long: `Deploy the USVP Token to the selected network.

The five role holders are passed to the constructor, then each role is
checked with hasRole. On remote networks the contract is verified on the
block explorer. The deployment is recorded in deployments.json under the
network name, replacing any earlier record for that network.`,
		Example: `  # Deploy to the in-process hardhat chain
  usvp deploy

  # Deploy to BSC testnet, failing if any role is missing
  usvp deploy --network bsctest --strict-roles

  # Deploy to mainnet without the confirmation prompt
  usvp deploy -n mainnet --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			network := app.Config.Network

			if requiresConfirmation(network) && !yes {
				if app.Config.NonInteractive {
					return fmt.Errorf("deploying to %s (chain ID %d) requires --yes in non-interactive mode", network.Name, network.ChainID)
				}
				ok, err := app.Prompter.Confirm(fmt.Sprintf("Deploy USVP Token to %s (chain ID %d)", network.Name, network.ChainID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deployment cancelled")
					return nil
				}
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			renderer.RenderHeader(network.Name)

			result, err := app.DeployToken.Run(cmd.Context(), usecase.DeployTokenParams{
				StrictRoles: app.Config.StrictRoles,
			})
			stopProgress(app)

			// A strict role failure still carries what was deployed
			if result != nil {
				if rerr := renderer.RenderDeployResult(result, app.Config.DeploymentsFile); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return fmt.Errorf("deployment failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict-roles", false, "Fail the deployment when a role check fails")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt on mainnet networks")

	return cmd
}

// requiresConfirmation is true for Ethereum and BNB Smart Chain mainnets
func requiresConfirmation(network *config.Network) bool {
	return network.ChainID == 1 || network.ChainID == 56
}
