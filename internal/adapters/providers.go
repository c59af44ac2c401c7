package adapters

import (
	"github.com/google/wire"
	"github.com/usvp-token/usvp-deploy/internal/adapters/blockchain"
	"github.com/usvp-token/usvp-deploy/internal/adapters/contracts"
	"github.com/usvp-token/usvp-deploy/internal/adapters/gasreport"
	"github.com/usvp-token/usvp-deploy/internal/adapters/interactive"
	artifacts "github.com/usvp-token/usvp-deploy/internal/adapters/repository/contracts"
	"github.com/usvp-token/usvp-deploy/internal/adapters/repository/deployments"
	"github.com/usvp-token/usvp-deploy/internal/adapters/verification"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// BlockchainSet provides RPC and signing implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnectorAdapter,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.ConnectorAdapter)),

	blockchain.NewSignerAdapter,
	wire.Bind(new(usecase.SignerResolver), new(*blockchain.SignerAdapter)),
)

// ContractsSet provides Hardhat artifact and contract factory implementations
var ContractsSet = wire.NewSet(
	artifacts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Repository)),

	contracts.NewFactoryProvider,
	wire.Bind(new(usecase.ContractFactoryProvider), new(*contracts.FactoryProvider)),
)

// VerificationSet provides the explorer verification implementation
var VerificationSet = wire.NewSet(
	verification.NewService,
	verification.NewVerifierAdapter,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.VerifierAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
)

// GasReportSet provides the gas reporter
var GasReportSet = wire.NewSet(
	gasreport.NewReporter,
	wire.Bind(new(usecase.GasReporter), new(*gasreport.Reporter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ConfirmationPrompter), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	ContractsSet,
	VerificationSet,
	FSSet,
	GasReportSet,
	InteractiveSet,
)
