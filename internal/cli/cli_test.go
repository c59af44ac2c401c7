package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usvp-token/usvp-deploy/internal/config"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	domainconfig "github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

func TestRequiresConfirmation(t *testing.T) {
	tests := []struct {
		chainID uint64
		want    bool
	}{
		{1, true},
		{56, true},
		{97, false},
		{11155111, false},
		{31337, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, requiresConfirmation(&domainconfig.Network{ChainID: tt.chainID}), "chain %d", tt.chainID)
	}
}

func TestVerifyConstructorArgs(t *testing.T) {
	t.Run("defaults to configured roles", func(t *testing.T) {
		args, err := verifyConstructorArgs(models.DefaultRoles(), nil)
		require.NoError(t, err)
		require.Len(t, args, 5)
		assert.Equal(t, common.HexToAddress(models.DefaultAdminAddress), args[0])
		assert.Equal(t, common.HexToAddress(models.CustodianAddress), args[4])
	})

	t.Run("explicit args", func(t *testing.T) {
		override := []string{
			"0x0000000000000000000000000000000000000001",
			"0x0000000000000000000000000000000000000002",
			"0x0000000000000000000000000000000000000003",
			"0x0000000000000000000000000000000000000004",
			"0x0000000000000000000000000000000000000005",
		}
		args, err := verifyConstructorArgs(models.DefaultRoles(), override)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000000003"), args[2])
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := verifyConstructorArgs(models.DefaultRoles(), []string{"0x0000000000000000000000000000000000000001"})
		assert.Error(t, err)
	})

	t.Run("bad address", func(t *testing.T) {
		_, err := verifyConstructorArgs(models.DefaultRoles(), []string{"0x01", "0x02", "0x03", "0x04", "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})
}

func TestRootCommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"deploy", "verify", "networks", "list", "show", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"network", "debug", "non-interactive", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, "n", root.PersistentFlags().Lookup("network").Shorthand)
}

func TestVersionCmd(t *testing.T) {
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	prev := [3]string{config.Version, config.Commit, config.Date}
	t.Cleanup(func() { config.SetBuildFlags(prev[0], prev[1], prev[2]) })
	config.SetBuildFlags("v1.2.0", "abc1234", "2024-03-01")

	require.NoError(t, root.Execute())
	assert.Equal(t, "usvp version v1.2.0 (commit abc1234, built 2024-03-01)\n", buf.String())
}

func TestFormatFatal(t *testing.T) {
	err := domain.UnknownNetworkErr{Name: "bsctes", Suggestions: []string{"bsctest"}}
	out := FormatFatal(err)
	assert.Contains(t, out, "❌ Error: ")
	assert.Contains(t, out, "bsctest")
}

func TestExecuteContextTimeout(t *testing.T) {
	newCmd := func(runErr error, captured *context.Context) *cobra.Command {
		return &cobra.Command{
			Use:           "run",
			SilenceUsage:  true,
			SilenceErrors: true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				attachTimeout(cmd, time.Hour)
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				*captured = cmd.Context()
				_, ok := cmd.Context().Deadline()
				assert.True(t, ok)
				return runErr
			},
		}
	}

	t.Run("cancelled after a failing command", func(t *testing.T) {
		var ctx context.Context
		cmd := newCmd(errors.New("boom"), &ctx)
		cmd.SetArgs([]string{})

		require.EqualError(t, Execute(context.Background(), cmd), "boom")
		require.NotNil(t, ctx)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("cancelled after a successful command", func(t *testing.T) {
		var ctx context.Context
		cmd := newCmd(nil, &ctx)
		cmd.SetArgs([]string{})

		require.NoError(t, Execute(context.Background(), cmd))
		require.NotNil(t, ctx)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("zero timeout leaves the context alone", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		attachTimeout(cmd, 0)

		_, ok := cmd.Context().Deadline()
		assert.False(t, ok)
		assert.Nil(t, cmd.PostRun)
	})
}
