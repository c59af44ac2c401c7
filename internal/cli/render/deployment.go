package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// Output formats of a single deployment
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// RenderDeployment renders a stored record in the requested format
func (r *DeploymentRenderer) RenderDeployment(d *models.NetworkDeployment, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(map[string]*models.DeploymentRecord{d.Network: d.Record}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, string(data))
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]*models.DeploymentRecord{d.Network: d.Record}); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		r.renderText(d)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
	}
}

func (r *DeploymentRenderer) renderText(d *models.NetworkDeployment) {
	rec := d.Record

	networkStyle.Fprintf(r.out, "USVP Token on %s\n", d.Network)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "  Address:          %s\n", addressStyle.Sprint(rec.Address))
	fmt.Fprintf(r.out, "  Deployer:         %s\n", rec.Deployer)
	fmt.Fprintf(r.out, "  Initial supply:   %s USVP\n", rec.InitialSupply)
	fmt.Fprintf(r.out, "  Remaining supply: %s USVP\n", rec.RemainingSupply)
	fmt.Fprintf(r.out, "  Deployed:         %s\n", rec.DeploymentTime.Format(timestampFmt))
	fmt.Fprintf(r.out, "  Last updated:     %s\n", rec.LastUpdated.Format(timestampFmt))

	fmt.Fprintln(r.out, "\nRoles:")
	fmt.Fprintf(r.out, "  Default admin: %s\n", rec.Roles.DefaultAdmin)
	fmt.Fprintf(r.out, "  Pauser:        %s\n", rec.Roles.Pauser)
	fmt.Fprintf(r.out, "  Minter:        %s\n", rec.Roles.Minter)
	fmt.Fprintf(r.out, "  Limiter:       %s\n", rec.Roles.Limiter)
	fmt.Fprintf(r.out, "  Custodian:     %s\n", rec.Roles.Custodian)
}
