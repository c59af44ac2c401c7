package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// DeploymentsRenderer renders the records stored in the deployments file
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders one table row per network
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Network", "Address", "Deployer", "Initial supply", "Deployed"})
	for _, d := range result.Deployments {
		t.AppendRow(table.Row{
			networkStyle.Sprint(d.Network),
			addressStyle.Sprint(d.Record.Address),
			d.Record.Deployer,
			d.Record.InitialSupply,
			labelStyle.Sprint(d.Record.DeploymentTime.Format(timestampFmt)),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\nTotal deployments: %d\n", len(result.Deployments))
	return nil
}
