package config

import (
	"strings"
	"time"

	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// Built-in network names
const (
	NetworkHardhat   = "hardhat"
	NetworkLocalhost = "localhost"
	NetworkSepolia   = "sepolia"
	NetworkBSCTest   = "bsctest"
	NetworkMainnet   = "mainnet"
	NetworkBSC       = "bsc"

	DefaultNetwork = NetworkHardhat
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot     string
	ArtifactsDir    string
	DeploymentsFile string

	// Network selected with --network (never nil after Provider)
	Network *Network
	// Every configured network, keyed by lowercase name
	Networks map[string]*Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	StrictRoles    bool

	Roles       models.RoleAssignment
	Solidity    SolidityConfig
	GasReporter GasReporterConfig
}

// Network represents network configuration
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId"`
	// Accounts holds hex private keys; empty when no key is configured
	Accounts []string        `json:"-"`
	Explorer *ExplorerConfig `json:"explorer,omitempty"`
}

// IsLocal reports whether the network is a local development chain
func (n *Network) IsLocal() bool {
	switch strings.ToLower(n.Name) {
	case NetworkHardhat, NetworkLocalhost:
		return true
	}
	return false
}

// IsInProcess reports whether the chain runs inside the usvp process
func (n *Network) IsInProcess() bool {
	return strings.EqualFold(n.Name, NetworkHardhat)
}

// HasSigner reports whether an account can sign on this network
func (n *Network) HasSigner() bool {
	return len(n.Accounts) > 0 || n.IsLocal()
}

// AddressURL returns the explorer page of an address, or "" without an explorer
func (n *Network) AddressURL(address string) string {
	if n.Explorer == nil || n.Explorer.BrowserURL == "" {
		return ""
	}
	return n.Explorer.BrowserURL + "/address/" + address + "#code"
}

// ExplorerConfig holds the Etherscan-compatible API used for verification
type ExplorerConfig struct {
	APIURL     string `json:"apiUrl"`
	BrowserURL string `json:"browserUrl"`
	APIKey     string `json:"-"`
}

// SolidityConfig mirrors the compiler settings used to build the artifacts
type SolidityConfig struct {
	Version       string
	Optimizer     bool
	OptimizerRuns int
	ViaIR         bool
}

// GasReporterConfig controls the post-deployment gas report
type GasReporterConfig struct {
	Enabled          bool
	Currency         string
	Token            string
	CoinMarketCapKey string
	GasPriceAPI      string
}
