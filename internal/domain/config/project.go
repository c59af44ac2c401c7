package config

import "github.com/usvp-token/usvp-deploy/internal/domain/models"

// ProjectFile represents the optional usvp.toml at the project root
type ProjectFile struct {
	Networks map[string]NetworkEntry `toml:"networks"`
	Roles    models.RoleAssignment   `toml:"roles"`
	Paths    PathsEntry              `toml:"paths"`
	Solidity SolidityEntry           `toml:"solidity"`
}

// NetworkEntry adds a network or overrides fields of a built-in one
type NetworkEntry struct {
	URL                string   `toml:"url,omitempty"`
	ChainID            uint64   `toml:"chain_id,omitempty"`
	Accounts           []string `toml:"accounts,omitempty"` //nolint:gosec // holds env var references
	ExplorerAPIURL     string   `toml:"explorer_api_url,omitempty"`
	ExplorerBrowserURL string   `toml:"explorer_browser_url,omitempty"`
	APIKey             string   `toml:"api_key,omitempty"`
}

// PathsEntry overrides where artifacts and records live
type PathsEntry struct {
	Artifacts   string `toml:"artifacts,omitempty"`
	Deployments string `toml:"deployments,omitempty"`
}

// SolidityEntry overrides compiler settings
type SolidityEntry struct {
	Version       string `toml:"version,omitempty"`
	OptimizerRuns int    `toml:"optimizer_runs,omitempty"`
	ViaIR         *bool  `toml:"via_ir,omitempty"`
}
