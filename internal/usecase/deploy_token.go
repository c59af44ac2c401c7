package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// DeployGasLimit is the fixed gas limit of the creation transaction
const DeployGasLimit uint64 = 5_000_000

// DeployTokenParams contains parameters for deploying the token
type DeployTokenParams struct {
	// StrictRoles fails the deployment when a role check comes back false
	StrictRoles bool
}

// DeployTokenResult contains everything reported during a deployment
type DeployTokenResult struct {
	Network         *config.Network
	Deployer        common.Address
	Balance         *big.Int
	Address         common.Address
	Transaction     *types.Transaction
	Receipt         *types.Receipt
	RoleChecks      []models.RoleCheck
	TotalSupply     *big.Int
	RemainingSupply *big.Int
	Verification    models.VerificationOutcome
	Record          *models.DeploymentRecord
	GasReport       *models.GasReport
}

// MissingRoles returns the names of role checks that were not granted
func (r *DeployTokenResult) MissingRoles() []string {
	return lo.FilterMap(r.RoleChecks, func(c models.RoleCheck, _ int) (string, bool) {
		return c.Name, !c.Granted
	})
}

// roleCheckOrder lists the role checks in the order they are made, with the
// role holder each one is checked against
var roleCheckOrder = []struct {
	name    string
	account func(models.RoleAssignment) string
}{
	{"PAUSER", func(r models.RoleAssignment) string { return r.Pauser }},
	{"MINTER", func(r models.RoleAssignment) string { return r.Minter }},
	{"LIMITER", func(r models.RoleAssignment) string { return r.Limiter }},
	{"CUSTODIAN", func(r models.RoleAssignment) string { return r.Custodian }},
}

// DeployToken deploys the USVP contract to the configured network, checks role
// assignment, requests verification and records the deployment
type DeployToken struct {
	config      *config.RuntimeConfig
	connector   ChainConnector
	signers     SignerResolver
	factories   ContractFactoryProvider
	verify      *VerifyContract
	repo        DeploymentRepository
	gasReporter GasReporter
	sink        ProgressSink
	log         *slog.Logger
	now         func() time.Time
}

// NewDeployToken creates a new DeployToken use case
func NewDeployToken(
	cfg *config.RuntimeConfig,
	connector ChainConnector,
	signers SignerResolver,
	factories ContractFactoryProvider,
	verify *VerifyContract,
	repo DeploymentRepository,
	gasReporter GasReporter,
	sink ProgressSink,
	log *slog.Logger,
) *DeployToken {
	return &DeployToken{
		config:      cfg,
		connector:   connector,
		signers:     signers,
		factories:   factories,
		verify:      verify,
		repo:        repo,
		gasReporter: gasReporter,
		sink:        sink,
		log:         log.With("component", "DeployToken"),
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Run executes the deployment. On a strict role failure the partial result is
// returned together with the error.
func (uc *DeployToken) Run(ctx context.Context, params DeployTokenParams) (*DeployTokenResult, error) {
	network := uc.config.Network
	roles := uc.config.Roles
	result := &DeployTokenResult{Network: network}

	signer, err := uc.signers.ResolveSigner(network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signer for %s: %w", network.Name, err)
	}
	result.Deployer = signer.Address

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "connect", Message: "Connecting to " + network.Name, Spinner: true})
	chain, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	defer chain.Close()

	result.Balance, err = chain.BalanceAt(ctx, signer.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get deployer balance: %w", err)
	}
	uc.sink.Info(fmt.Sprintf("Deployer %s, balance %s ETH, network %s",
		signer.Address.Hex(), domain.FormatEther(result.Balance), network.Name))

	if err := roles.Validate(); err != nil {
		return nil, err
	}

	factory, err := uc.factories.GetContractFactory(ctx, TokenContractName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s contract factory: %w", TokenContractName, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploy", Message: "Deploying USVP Token", Spinner: true})
	token, err := factory.Deploy(ctx, chain, signer, DeployOptions{GasLimit: DeployGasLimit}, constructorArgs(roles)...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment transaction: %w", err)
	}
	result.Transaction = token.DeployTransaction()
	uc.log.Debug("deployment sent", "tx", result.Transaction.Hash().Hex(), "address", token.Address().Hex())

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "wait", Message: "Waiting for deployment", Spinner: true})
	result.Receipt, err = token.WaitForDeployment(ctx)
	if err != nil {
		return nil, fmt.Errorf("deployment failed: %w", err)
	}
	result.Address = token.Address()
	uc.sink.Info("USVP Token deployed at " + result.Address.Hex())

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "roles", Message: "Checking roles", Spinner: true})
	result.RoleChecks, err = uc.checkRoles(ctx, token, roles)
	if err != nil {
		return nil, err
	}

	if result.TotalSupply, err = token.TotalSupply(ctx); err != nil {
		return nil, fmt.Errorf("failed to read totalSupply: %w", err)
	}
	if result.RemainingSupply, err = token.RemainingSupply(ctx); err != nil {
		return nil, fmt.Errorf("failed to read remainingSupply: %w", err)
	}

	if missing := result.MissingRoles(); len(missing) > 0 {
		if params.StrictRoles {
			return result, domain.MissingRolesErr{Roles: missing}
		}
		uc.log.Warn("role checks failed", "roles", missing)
	}

	result.Verification = uc.verify.Run(ctx, VerifyContractParams{
		Network:         network,
		Address:         result.Address,
		ConstructorArgs: constructorArgs(roles),
	})

	now := uc.now()
	result.Record = &models.DeploymentRecord{
		Address:         result.Address.Hex(),
		Deployer:        signer.Address.Hex(),
		Roles:           roles,
		InitialSupply:   domain.FormatEther(result.TotalSupply),
		RemainingSupply: domain.FormatEther(result.RemainingSupply),
		DeploymentTime:  now,
		LastUpdated:     now,
	}
	if err := uc.repo.SaveDeployment(ctx, network.Name, result.Record); err != nil {
		return nil, fmt.Errorf("failed to save deployment: %w", err)
	}

	if uc.config.GasReporter.Enabled {
		report, err := uc.gasReporter.Report(ctx, network, result.Receipt)
		if err != nil {
			uc.log.Warn("gas report unavailable", "error", err)
		} else {
			result.GasReport = report
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "done", Message: "Deployment complete"})
	return result, nil
}

// checkRoles looks up each role id and asks hasRole for its expected holder, one call at a time
func (uc *DeployToken) checkRoles(ctx context.Context, token TokenContract, roles models.RoleAssignment) ([]models.RoleCheck, error) {
	checks := make([]models.RoleCheck, 0, len(roleCheckOrder))
	for _, rc := range roleCheckOrder {
		role, err := token.RoleID(ctx, rc.name+"_ROLE")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s_ROLE: %w", rc.name, err)
		}

		account := rc.account(roles)
		granted, err := token.HasRole(ctx, role, common.HexToAddress(account))
		if err != nil {
			return nil, fmt.Errorf("failed to check %s_ROLE: %w", rc.name, err)
		}

		checks = append(checks, models.RoleCheck{
			Name:    rc.name,
			Role:    role,
			Account: account,
			Granted: granted,
		})
	}
	return checks, nil
}

func constructorArgs(roles models.RoleAssignment) []any {
	return lo.Map(roles.ConstructorArgs(), func(a common.Address, _ int) any { return a })
}

// IsStrictRoleFailure reports whether err stopped the deployment in strict role mode
func IsStrictRoleFailure(err error) bool {
	return errors.Is(err, domain.ErrRoleMissing)
}
