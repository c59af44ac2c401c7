package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeChain satisfies usecase.Chain; only the methods the use cases call are implemented
type fakeChain struct {
	usecase.Chain
	balance *big.Int
	closed  bool
}

func (c *fakeChain) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return c.balance, nil
}

func (c *fakeChain) Close() { c.closed = true }

// MockConnector is a mock implementation of ChainConnector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context, network *config.Network) (usecase.Chain, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Chain), args.Error(1)
}

// MockSignerResolver is a mock implementation of SignerResolver
type MockSignerResolver struct {
	mock.Mock
}

func (m *MockSignerResolver) ResolveSigner(network *config.Network) (*models.Signer, error) {
	args := m.Called(network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Signer), args.Error(1)
}

// MockFactoryProvider is a mock implementation of ContractFactoryProvider
type MockFactoryProvider struct {
	mock.Mock
}

func (m *MockFactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ContractFactory), args.Error(1)
}

// MockFactory is a mock implementation of ContractFactory
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) Deploy(ctx context.Context, chain usecase.Chain, signer *models.Signer, opts usecase.DeployOptions, args ...any) (usecase.TokenContract, error) {
	ret := m.Called(ctx, chain, signer, opts, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(usecase.TokenContract), ret.Error(1)
}

// MockToken is a mock implementation of TokenContract
type MockToken struct {
	mock.Mock
}

func (m *MockToken) Address() common.Address {
	return m.Called().Get(0).(common.Address)
}

func (m *MockToken) DeployTransaction() *types.Transaction {
	return m.Called().Get(0).(*types.Transaction)
}

func (m *MockToken) WaitForDeployment(ctx context.Context) (*types.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

func (m *MockToken) RoleID(ctx context.Context, name string) ([32]byte, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([32]byte), args.Error(1)
}

func (m *MockToken) HasRole(ctx context.Context, role [32]byte, account common.Address) (bool, error) {
	args := m.Called(ctx, role, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockToken) TotalSupply(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockToken) RemainingSupply(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockVerifier is a mock implementation of ContractVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, network *config.Network, req models.VerificationRequest) error {
	return m.Called(ctx, network, req).Error(0)
}

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, network string, record *models.DeploymentRecord) error {
	return m.Called(ctx, network, record).Error(0)
}

func (m *MockDeploymentRepository) GetDeployment(ctx context.Context, network string) (*models.DeploymentRecord, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeploymentRecord), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context) ([]models.NetworkDeployment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NetworkDeployment), args.Error(1)
}

// MockGasReporter is a mock implementation of GasReporter
type MockGasReporter struct {
	mock.Mock
}

func (m *MockGasReporter) Report(ctx context.Context, network *config.Network, receipt *types.Receipt) (*models.GasReport, error) {
	args := m.Called(ctx, network, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GasReport), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Error(message string) { m.errors = append(m.errors, message) }

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}
