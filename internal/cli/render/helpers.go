package render

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	separator    = "----------------------------------------------------"
	check        = "✅"
	cross        = "❌"
	timestampFmt = "2006-01-02 15:04:05 MST"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
	okStyle      = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	networkStyle = color.New(color.FgCyan, color.Bold)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("%s %s", check, message)
}

func statusIcon(ok bool) string {
	if ok {
		return check
	}
	return cross
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}
