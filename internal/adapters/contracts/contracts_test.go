package contracts

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usvp-token/usvp-deploy/internal/adapters/blockchain"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

const tokenABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"defaultAdmin","type":"address"},{"name":"pauser","type":"address"},
		{"name":"minter","type":"address"},{"name":"limiter","type":"address"},
		{"name":"custodian","type":"address"}]},
	{"type":"function","name":"PAUSER_ROLE","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"remainingSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// answerBytecode deploys a contract that returns the word 0x2a for any call
const answerBytecode = "0x600a600c600039600a6000f3602a60005260206000f3"

// revertBytecode reverts in the constructor
const revertBytecode = "0x60006000fd"

type stubArtifacts struct {
	artifact *models.Artifact
	err      error
}

func (s stubArtifacts) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	return s.artifact, s.err
}

func testArtifact(t *testing.T, bytecode string) *models.Artifact {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	return &models.Artifact{
		ContractName: "USVP",
		SourceName:   "contracts/USVP.sol",
		ABI:          parsed,
		Bytecode:     common.FromHex(bytecode),
	}
}

func deployArgs() []any {
	args := make([]any, 0, 5)
	for _, a := range models.DefaultRoles().ConstructorArgs() {
		args = append(args, a)
	}
	return args
}

func setup(t *testing.T, bytecode string) (*blockchain.SimulatedChain, *models.Signer, usecase.ContractFactory) {
	t.Helper()
	chain, err := blockchain.NewSimulatedChain(31337)
	require.NoError(t, err)
	t.Cleanup(chain.Close)

	signer, err := blockchain.NewSignerAdapter().ResolveSigner(&config.Network{Name: "hardhat"})
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := NewFactoryProvider(stubArtifacts{artifact: testArtifact(t, bytecode)}, log)
	factory, err := provider.GetContractFactory(context.Background(), "USVP")
	require.NoError(t, err)

	return chain, signer, factory
}

func TestFactoryDeploy(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys and reads views", func(t *testing.T) {
		chain, signer, factory := setup(t, answerBytecode)

		token, err := factory.Deploy(ctx, chain, signer, usecase.DeployOptions{GasLimit: 5_000_000}, deployArgs()...)
		require.NoError(t, err)

		tx := token.DeployTransaction()
		require.NotNil(t, tx)
		assert.Equal(t, uint64(5_000_000), tx.Gas())
		assert.Nil(t, tx.To())

		receipt, err := token.WaitForDeployment(ctx)
		require.NoError(t, err)
		assert.Equal(t, receipt.ContractAddress, token.Address())

		code, err := chain.CodeAt(ctx, token.Address(), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, code)

		supply, err := token.TotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(42), supply)

		remaining, err := token.RemainingSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(42), remaining)

		role, err := token.RoleID(ctx, "PAUSER_ROLE")
		require.NoError(t, err)
		var want [32]byte
		want[31] = 0x2a
		assert.Equal(t, want, role)
	})

	t.Run("reverted constructor", func(t *testing.T) {
		chain, signer, factory := setup(t, revertBytecode)

		token, err := factory.Deploy(ctx, chain, signer, usecase.DeployOptions{GasLimit: 5_000_000}, deployArgs()...)
		require.NoError(t, err)

		_, err = token.WaitForDeployment(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDeploymentReverted)
	})

	t.Run("wrong constructor arity", func(t *testing.T) {
		chain, signer, factory := setup(t, answerBytecode)

		_, err := factory.Deploy(ctx, chain, signer, usecase.DeployOptions{GasLimit: 5_000_000}, common.Address{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "constructor arguments")
	})

	t.Run("unknown method", func(t *testing.T) {
		chain, _, _ := setup(t, answerBytecode)
		token := NewToken(common.Address{}, nil, testArtifact(t, answerBytecode).ABI, chain)

		_, err := token.RoleID(ctx, "NOPE_ROLE")
		require.Error(t, err)
		_, err = token.WaitForDeployment(ctx)
		require.Error(t, err)
	})
}

func TestGetContractFactory(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("missing artifact", func(t *testing.T) {
		provider := NewFactoryProvider(stubArtifacts{err: domain.ErrArtifactNotFound}, log)
		_, err := provider.GetContractFactory(context.Background(), "USVP")
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("abstract contract", func(t *testing.T) {
		provider := NewFactoryProvider(stubArtifacts{artifact: testArtifact(t, "0x")}, log)
		_, err := provider.GetContractFactory(context.Background(), "USVP")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no bytecode")
	})
}
