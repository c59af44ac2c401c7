package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnknownNetwork is returned when a network name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoSigner is returned when a network has no account to sign with
	ErrNoSigner = errors.New("no signer configured")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrChainIDMismatch is returned when the RPC reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrArtifactNotFound is returned when a compiled contract artifact can't be found
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrDeploymentReverted is returned when the deployment transaction reverts
	ErrDeploymentReverted = errors.New("deployment transaction reverted")

	// ErrRoleMissing is returned in strict mode when an expected role is not granted
	ErrRoleMissing = errors.New("expected role not granted")

	// ErrAlreadyVerified is returned by explorers when the source is already published
	ErrAlreadyVerified = errors.New("already verified")

	// ErrVerificationFailed is returned when contract verification fails
	ErrVerificationFailed = errors.New("verification failed")
)

// IsAlreadyVerified reports whether err means the contract source is already
// published on the explorer. Explorers only signal this through their message
// text, so any error containing "already verified" in any casing qualifies.
func IsAlreadyVerified(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAlreadyVerified) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already verified")
}

// UnknownNetworkErr carries the requested name and the closest configured names
type UnknownNetworkErr struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network %q", e.Name)
	}
	return fmt.Sprintf("unknown network %q, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkErr) Unwrap() error {
	return ErrUnknownNetwork
}

// MissingRolesErr lists the role checks that came back false
type MissingRolesErr struct {
	Roles []string
}

func (e MissingRolesErr) Error() string {
	return fmt.Sprintf("%s: %s", ErrRoleMissing, strings.Join(e.Roles, ", "))
}

func (e MissingRolesErr) Unwrap() error {
	return ErrRoleMissing
}
