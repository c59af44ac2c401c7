package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// StageProgress reports the deployment stages. Interactive output runs a
// spinner per stage and prints a tick line once the stage is left; plain
// output prints one line per stage.
type StageProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
	current     *stageInfo
	now         func() time.Time
}

type stageInfo struct {
	Stage     string
	Message   string
	StartTime time.Time
}

// NewStageProgress creates a new stage progress reporter
func NewStageProgress(out io.Writer, interactive bool) *StageProgress {
	return &StageProgress{
		out:         out,
		interactive: interactive,
		now:         time.Now,
	}
}

// OnProgress handles progress events
func (p *StageProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if p.current != nil && p.current.Stage != event.Stage {
		p.completeCurrentStage()
	}

	if !p.interactive {
		if event.Message != "" && event.Stage != "done" {
			fmt.Fprintf(p.out, "→ %s\n", event.Message)
		}
		p.track(event)
		return
	}

	if event.Spinner {
		if p.spinner == nil {
			p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.out))
			_ = p.spinner.Color("cyan", "bold")
		}
		p.spinner.Suffix = " " + event.Message
		if !p.spinner.Active() {
			p.spinner.Start()
		}
	} else {
		p.stopSpinner()
	}
	p.track(event)
}

// Info prints an info message
func (p *StageProgress) Info(message string) {
	p.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (p *StageProgress) Error(message string) {
	p.printPaused(color.New(color.FgRed), message)
}

// Stop ends the spinner of a stage that is still running
func (p *StageProgress) Stop() {
	p.stopSpinner()
	p.current = nil
}

func (p *StageProgress) track(event usecase.ProgressEvent) {
	if event.Stage == "done" || !event.Spinner {
		p.current = nil
		return
	}
	if p.current == nil || p.current.Stage != event.Stage {
		p.current = &stageInfo{Stage: event.Stage, StartTime: p.now()}
	}
	p.current.Message = event.Message
}

// completeCurrentStage prints the tick line of the stage being left
func (p *StageProgress) completeCurrentStage() {
	stage := p.current
	p.current = nil
	if !p.interactive {
		return
	}

	p.stopSpinner()
	duration := p.now().Sub(stage.StartTime).Round(time.Millisecond)
	fmt.Fprintf(p.out, "%s %s %s\n",
		color.New(color.FgGreen).Sprint("✓"),
		stage.Message,
		color.New(color.Faint).Sprintf("(%s)", duration))
}

func (p *StageProgress) printPaused(c *color.Color, message string) {
	wasActive := p.spinner != nil && p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}

	c.Fprintln(p.out, message)

	if wasActive {
		p.spinner.Start()
	}
}

func (p *StageProgress) stopSpinner() {
	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

// Ensure StageProgress implements ProgressSink
var _ usecase.ProgressSink = (*StageProgress)(nil)
