package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// RenderGasReport prints the cost of the deployment transaction as a table
func RenderGasReport(out io.Writer, report *models.GasReport) {
	sectionStyle.Fprintln(out, "⛽ Gas report:")

	t := newTable(out)
	header := table.Row{"Contract", "Gas used", "Gas price (gwei)", fmt.Sprintf("Cost (%s)", report.Token)}
	row := table.Row{
		"USVP",
		report.GasUsed,
		report.GasPriceGwei.StringFixed(2) + " (" + report.GasPriceSource + ")",
		report.CostNative.StringFixed(6),
	}
	if report.HasFiat() {
		header = append(header, fmt.Sprintf("Cost (%s)", report.Currency))
		row = append(row, report.CostFiat.StringFixed(2))
	}
	t.AppendHeader(header)
	t.AppendRow(row)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()

	if report.HasFiat() {
		fmt.Fprintf(out, "%s 1 %s = %s %s\n", labelStyle.Sprint("Price:"), report.Token, report.TokenPrice.StringFixed(2), report.Currency)
	}
}
