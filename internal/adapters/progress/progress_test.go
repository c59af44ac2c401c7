package progress

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

func TestStageProgressPlain(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	var buf bytes.Buffer
	p := NewStageProgress(&buf, false)

	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "connect", Message: "Connecting to bsctest", Spinner: true})
	p.Info("Deployer 0xabc, balance 1.0 ETH, network bsctest")
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "deploy", Message: "Deploying USVP Token", Spinner: true})
	p.Error("Verification failed: boom")
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "done", Message: "Deployment complete"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"→ Connecting to bsctest",
		"Deployer 0xabc, balance 1.0 ETH, network bsctest",
		"→ Deploying USVP Token",
		"Verification failed: boom",
	}, lines)
	assert.Nil(t, p.current)
}

func TestStageProgressInteractiveTicks(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	var buf bytes.Buffer
	p := NewStageProgress(&buf, true)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "wait", Message: "Waiting for deployment", Spinner: true})
	clock = clock.Add(1500 * time.Millisecond)
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "roles", Message: "Checking roles", Spinner: true})
	clock = clock.Add(20 * time.Millisecond)
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: "done", Message: "Deployment complete"})
	p.Stop()

	out := buf.String()
	assert.Contains(t, out, "✓ Waiting for deployment (1.5s)")
	assert.Contains(t, out, "✓ Checking roles (20ms)")
	assert.NotContains(t, out, "Deployment complete")
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "connect"})
	sink.Info("ignored")
	sink.Error("ignored")
}
