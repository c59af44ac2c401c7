package models

import (
	"crypto/ecdsa"
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Artifact is a compiled contract as emitted by the Hardhat compile step
type Artifact struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
	// BuildInfo is nil when the .dbg.json sidecar or its build-info file is missing
	BuildInfo *BuildInfo
}

// FullyQualifiedName returns "<sourceName>:<contractName>" as explorers expect it
func (a *Artifact) FullyQualifiedName() string {
	return a.SourceName + ":" + a.ContractName
}

// BuildInfo is the solc standard-JSON input and compiler version behind an artifact
type BuildInfo struct {
	SolcVersion     string          `json:"solcVersion"`
	SolcLongVersion string          `json:"solcLongVersion"`
	Input           json.RawMessage `json:"input"`
}

// Signer is the account that sends transactions
type Signer struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// VerificationRequest describes a deployed contract to publish on an explorer
type VerificationRequest struct {
	Address         common.Address
	ContractName    string
	ConstructorArgs []any
}
