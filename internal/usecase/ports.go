package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// Chain is an open RPC session on the selected network
type Chain interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// ChainConnector opens RPC sessions
type ChainConnector interface {
	Connect(ctx context.Context, network *config.Network) (Chain, error)
}

// SignerResolver picks the account that sends transactions on a network
type SignerResolver interface {
	ResolveSigner(network *config.Network) (*models.Signer, error)
}

// ArtifactRepository provides access to compiled Hardhat artifacts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
}

// ContractFactoryProvider loads deployable contract factories by name
type ContractFactoryProvider interface {
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

// DeployOptions tunes the deployment transaction
type DeployOptions struct {
	GasLimit uint64
}

// ContractFactory sends contract creation transactions
type ContractFactory interface {
	Deploy(ctx context.Context, chain Chain, signer *models.Signer, opts DeployOptions, args ...any) (TokenContract, error)
}

// TokenContract is a handle on a USVP contract whose creation has been sent
type TokenContract interface {
	Address() common.Address
	DeployTransaction() *types.Transaction
	// WaitForDeployment blocks until the creation transaction is mined and succeeded
	WaitForDeployment(ctx context.Context) (*types.Receipt, error)
	RoleID(ctx context.Context, name string) ([32]byte, error)
	HasRole(ctx context.Context, role [32]byte, account common.Address) (bool, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	RemainingSupply(ctx context.Context) (*big.Int, error)
}

// ContractVerifier publishes contract source on a block explorer
type ContractVerifier interface {
	Verify(ctx context.Context, network *config.Network, req models.VerificationRequest) error
}

// DeploymentRepository persists one deployment record per network
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, network string, record *models.DeploymentRecord) error
	GetDeployment(ctx context.Context, network string) (*models.DeploymentRecord, error)
	ListDeployments(ctx context.Context) ([]models.NetworkDeployment, error)
}

// GasReporter prices a mined transaction
type GasReporter interface {
	Report(ctx context.Context, network *config.Network, receipt *types.Receipt) (*models.GasReport, error)
}

// ConfirmationPrompter asks the user before irreversible actions
type ConfirmationPrompter interface {
	Confirm(message string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NetworkSelector lets the user pick a network interactively
type NetworkSelector interface {
	SelectNetwork(options []string, label string) (string, error)
}
