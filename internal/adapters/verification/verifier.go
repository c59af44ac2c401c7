package verification

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// VerifierAdapter verifies contracts from their Hardhat build-info
type VerifierAdapter struct {
	service   *Service
	artifacts usecase.ArtifactRepository
	solidity  config.SolidityConfig
	log       *slog.Logger
}

// NewVerifierAdapter creates a new verifier adapter
func NewVerifierAdapter(cfg *config.RuntimeConfig, service *Service, artifacts usecase.ArtifactRepository, log *slog.Logger) *VerifierAdapter {
	return &VerifierAdapter{
		service:   service,
		artifacts: artifacts,
		solidity:  cfg.Solidity,
		log:       log.With("component", "Verifier"),
	}
}

// Verify publishes the contract source on the network's explorer
func (v *VerifierAdapter) Verify(ctx context.Context, network *config.Network, req models.VerificationRequest) error {
	if network.Explorer == nil || network.Explorer.APIURL == "" {
		return fmt.Errorf("no explorer configured for network %s", network.Name)
	}
	if network.Explorer.APIKey == "" {
		return fmt.Errorf("no API key configured for network %s", network.Name)
	}

	artifact, err := v.artifacts.GetArtifact(ctx, req.ContractName)
	if err != nil {
		return err
	}
	if artifact.BuildInfo == nil || len(artifact.BuildInfo.Input) == 0 {
		return fmt.Errorf("build-info for %s not found, run `npx hardhat compile`", req.ContractName)
	}

	encodedArgs, err := artifact.ABI.Pack("", req.ConstructorArgs...)
	if err != nil {
		return fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	ep := Endpoint{
		APIURL:  network.Explorer.APIURL,
		APIKey:  network.Explorer.APIKey,
		ChainID: network.ChainID,
	}
	address := req.Address.Hex()

	verified, err := v.service.IsVerified(ctx, ep, address)
	if err != nil {
		// Not fatal: the submission itself reports already verified contracts
		v.log.Debug("getsourcecode failed", "address", address, "error", err)
	} else if verified {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyVerified, address)
	}

	guid, err := v.service.Submit(ctx, ep, SubmitParams{
		Address:         address,
		ContractName:    artifact.FullyQualifiedName(),
		CompilerVersion: v.compilerVersion(artifact.BuildInfo),
		StandardJSON:    string(artifact.BuildInfo.Input),
		ConstructorArgs: hex.EncodeToString(encodedArgs),
	})
	if err != nil {
		return err
	}

	if err := v.service.WaitForVerification(ctx, ep, guid); err != nil {
		return err
	}

	v.log.Info("contract verified", "address", address, "url", network.AddressURL(address))
	return nil
}

// compilerVersion prefers the exact solc build recorded by Hardhat
func (v *VerifierAdapter) compilerVersion(info *models.BuildInfo) string {
	version := info.SolcLongVersion
	if version == "" {
		version = info.SolcVersion
	}
	if version == "" {
		version = v.solidity.Version
	}
	return "v" + version
}

// Ensure the adapter implements the interface
var _ usecase.ContractVerifier = (*VerifierAdapter)(nil)
