package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// TokenContractName is the artifact name of the token contract
const TokenContractName = "USVP"

// VerifyContractParams contains parameters for verifying a deployed contract
type VerifyContractParams struct {
	Network         *config.Network
	Address         common.Address
	ConstructorArgs []any
}

// VerifyContract requests block explorer verification. It never fails: any
// error is folded into the returned outcome.
type VerifyContract struct {
	verifier ContractVerifier
	sink     ProgressSink
	log      *slog.Logger
}

// NewVerifyContract creates a new VerifyContract use case
func NewVerifyContract(verifier ContractVerifier, sink ProgressSink, log *slog.Logger) *VerifyContract {
	return &VerifyContract{
		verifier: verifier,
		sink:     sink,
		log:      log.With("component", "VerifyContract"),
	}
}

// Run executes the verification request
func (uc *VerifyContract) Run(ctx context.Context, params VerifyContractParams) models.VerificationOutcome {
	if params.Network.IsLocal() {
		return models.VerificationOutcome{Status: models.VerificationStatusSkipped}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "verify",
		Message: "Verifying contract on " + params.Network.Name,
		Spinner: true,
	})

	err := uc.verifier.Verify(ctx, params.Network, models.VerificationRequest{
		Address:         params.Address,
		ContractName:    TokenContractName,
		ConstructorArgs: params.ConstructorArgs,
	})

	switch {
	case err == nil:
		uc.sink.Info("Contract verified")
		return models.VerificationOutcome{Status: models.VerificationStatusVerified}
	case domain.IsAlreadyVerified(err):
		uc.sink.Info("Contract already verified")
		return models.VerificationOutcome{Status: models.VerificationStatusAlreadyVerified}
	default:
		uc.log.Warn("verification failed", "address", params.Address.Hex(), "error", err)
		uc.sink.Error("Verification failed: " + err.Error())
		return models.VerificationOutcome{Status: models.VerificationStatusFailed, Err: err}
	}
}
