package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/usvp-token/usvp-deploy/internal/cli/render"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var ctorArgs []string

	cmd := &cobra.Command{
		Use:   "verify <address>",
		Short: "Verify a deployed USVP Token on the block explorer",
		Long: `Submit the USVP source for an already deployed contract to the selected
network's Etherscan-compatible explorer.

The configured role holders are used as constructor arguments unless
--args lists the five addresses explicitly.`,
		Example: `  usvp verify 0x5FbDB2315678afecb367f032d93F642f64180aa3 --network sepolia

  usvp verify 0x5FbD... -n bsc --args 0xAdmin,0xPauser,0xMinter,0xLimiter,0xCustodian`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			constructorArgs, err := verifyConstructorArgs(app.Config.Roles, ctorArgs)
			if err != nil {
				return err
			}

			network := app.Config.Network
			outcome := app.VerifyContract.Run(cmd.Context(), usecase.VerifyContractParams{
				Network:         network,
				Address:         address,
				ConstructorArgs: constructorArgs,
			})
			stopProgress(app)

			render.NewVerifyRenderer(cmd.OutOrStdout()).RenderStatus(address.Hex(), outcome, network.AddressURL(address.Hex()))

			if outcome.Status == models.VerificationStatusFailed {
				return fmt.Errorf("verification failed: %w", outcome.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ctorArgs, "args", nil, "Constructor arguments: admin,pauser,minter,limiter,custodian")

	return cmd
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// verifyConstructorArgs returns the five constructor addresses, from --args when given
func verifyConstructorArgs(roles models.RoleAssignment, override []string) ([]any, error) {
	if len(override) == 0 {
		if err := roles.Validate(); err != nil {
			return nil, err
		}
		return lo.Map(roles.ConstructorArgs(), func(a common.Address, _ int) any { return a }), nil
	}

	if len(override) != 5 {
		return nil, fmt.Errorf("--args takes 5 addresses (admin, pauser, minter, limiter, custodian), got %d", len(override))
	}

	result := make([]any, 0, len(override))
	for _, s := range override {
		addr, err := parseAddress(s)
		if err != nil {
			return nil, err
		}
		result = append(result, addr)
	}
	return result, nil
}
