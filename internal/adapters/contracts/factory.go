package contracts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// FactoryProvider builds contract factories from compiled artifacts
type FactoryProvider struct {
	artifacts usecase.ArtifactRepository
	log       *slog.Logger
}

// NewFactoryProvider creates a new contract factory provider
func NewFactoryProvider(artifacts usecase.ArtifactRepository, log *slog.Logger) *FactoryProvider {
	return &FactoryProvider{
		artifacts: artifacts,
		log:       log.With("component", "ContractFactory"),
	}
}

// GetContractFactory loads the artifact for name and returns a factory for it
func (p *FactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	artifact, err := p.artifacts.GetArtifact(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(artifact.Bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no bytecode (abstract contract or interface?)", name)
	}
	return &Factory{artifact: artifact, log: p.log}, nil
}

// Factory deploys a single contract artifact
type Factory struct {
	artifact *models.Artifact
	log      *slog.Logger
}

// Deploy packs the constructor arguments and sends the creation transaction
func (f *Factory) Deploy(ctx context.Context, chain usecase.Chain, signer *models.Signer, opts usecase.DeployOptions, args ...any) (usecase.TokenContract, error) {
	chainID, err := chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	input, err := f.artifact.ABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	auth := bind.NewKeyedTransactor(signer.PrivateKey, chainID)
	auth.Context = ctx
	auth.GasLimit = opts.GasLimit

	address, tx, err := bind.DeployContract(auth, f.artifact.Bytecode, chain, input)
	if err != nil {
		return nil, err
	}

	f.log.Debug("creation transaction sent",
		"contract", f.artifact.ContractName,
		"tx", tx.Hash().Hex(),
		"address", address.Hex(),
		"nonce", tx.Nonce(),
	)

	return NewToken(address, tx, f.artifact.ABI, chain), nil
}

var (
	_ usecase.ContractFactoryProvider = (*FactoryProvider)(nil)
	_ usecase.ContractFactory         = (*Factory)(nil)
)
