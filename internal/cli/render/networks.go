package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders every configured network, marking the selected one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "Network", "Chain ID", "Local", "Signer", "Verify", "Explorer"})
	for _, n := range result.Networks {
		marker := ""
		name := n.Name
		if n.Name == result.Current {
			marker = "▸"
			name = networkStyle.Sprint(n.Name)
		}
		t.AppendRow(table.Row{
			marker,
			name,
			n.ChainID,
			yesNo(n.Local),
			statusIcon(n.HasSigner),
			verifyCell(n),
			n.ExplorerURL,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()

	return nil
}

func verifyCell(n usecase.NetworkStatus) string {
	switch {
	case n.Local:
		return "-"
	case n.Verifiable:
		return check
	default:
		return cross
	}
}
