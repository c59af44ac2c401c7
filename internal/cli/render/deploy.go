package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// DeployRenderer renders the summary of a token deployment
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderHeader prints the banner shown before the deployment starts
func (r *DeployRenderer) RenderHeader(networkName string) {
	fmt.Fprintln(r.out, separator)
	sectionStyle.Fprintf(r.out, "🚀 Deploying USVP Token to %s\n", networkStyle.Sprint(networkName))
	fmt.Fprintln(r.out, separator)
}

// RenderDeployResult prints what the deployment produced. It also renders the
// partial result returned by a strict role failure.
func (r *DeployRenderer) RenderDeployResult(result *usecase.DeployTokenResult, deploymentsFile string) error {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s USVP Token deployed at: %s\n", check, addressStyle.Sprint(result.Address.Hex()))
	if result.Transaction != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Transaction:"), result.Transaction.Hash().Hex())
	}
	if result.Receipt != nil && result.Receipt.BlockNumber != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Block:"), result.Receipt.BlockNumber.String())
	}
	fmt.Fprintln(r.out, separator)

	r.renderRoles(result)

	if result.TotalSupply != nil {
		fmt.Fprintln(r.out)
		sectionStyle.Fprintln(r.out, "📊 Token information:")
		fmt.Fprintf(r.out, "💰 Initial supply:   %s USVP\n", domain.FormatEther(result.TotalSupply))
		fmt.Fprintf(r.out, "🎯 Max supply:       %s USVP\n", domain.FormatUnits(domain.MaxSupply))
		fmt.Fprintf(r.out, "📈 Remaining supply: %s USVP\n", domain.FormatEther(result.RemainingSupply))
	}

	if result.Record == nil {
		return nil
	}

	if !result.Network.IsLocal() {
		fmt.Fprintln(r.out)
		NewVerifyRenderer(r.out).RenderOutcome(result.Verification)
		if url := result.Network.AddressURL(result.Address.Hex()); url != "" {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Explorer:"), url)
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "📝 Deployment saved to %s\n", filepath.Base(deploymentsFile))

	if result.GasReport != nil {
		fmt.Fprintln(r.out)
		RenderGasReport(r.out, result.GasReport)
	}

	fmt.Fprintln(r.out)
	okStyle.Fprintln(r.out, "🎉 Deployment completed successfully!")
	fmt.Fprintln(r.out, separator)
	return nil
}

func (r *DeployRenderer) renderRoles(result *usecase.DeployTokenResult) {
	if len(result.RoleChecks) == 0 {
		return
	}

	fmt.Fprintln(r.out)
	sectionStyle.Fprintln(r.out, "🔍 Role checks:")
	for _, c := range result.RoleChecks {
		fmt.Fprintf(r.out, "%s_ROLE: %s %s\n", c.Name, statusIcon(c.Granted), c.Account)
	}

	if missing := result.MissingRoles(); len(missing) > 0 {
		fmt.Fprintln(r.out, FormatWarning(domain.MissingRolesErr{Roles: missing}.Error()))
	}
}
