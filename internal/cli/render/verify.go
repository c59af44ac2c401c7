package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// RenderOutcome prints one status line for a verification outcome
func (r *VerifyRenderer) RenderOutcome(outcome models.VerificationOutcome) {
	switch outcome.Status {
	case models.VerificationStatusVerified:
		fmt.Fprintln(r.out, FormatSuccess("Contract verified successfully"))
	case models.VerificationStatusAlreadyVerified:
		fmt.Fprintln(r.out, FormatSuccess("Contract already verified"))
	case models.VerificationStatusSkipped:
		fmt.Fprintf(r.out, "⏭️  %s\n", labelStyle.Sprint("Verification skipped on local network"))
	default:
		msg := "unknown error"
		if outcome.Err != nil {
			msg = outcome.Err.Error()
		}
		errorStyle.Fprintf(r.out, "%s Verification failed: %s\n", cross, msg)
	}
}

// RenderStatus prints the verification status of an address
func (r *VerifyRenderer) RenderStatus(address string, outcome models.VerificationOutcome, explorerURL string) {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Address:"), address)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Status:"), statusLabel(outcome.Status))
	if explorerURL != "" && outcome.Succeeded() {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Explorer:"), explorerURL)
	}
	r.RenderOutcome(outcome)
}

// statusLabel turns ALREADY_VERIFIED into "Already Verified"
func statusLabel(status models.VerificationStatus) string {
	words := strings.ReplaceAll(strings.ToLower(string(status)), "_", " ")
	return cases.Title(language.English).String(words)
}
