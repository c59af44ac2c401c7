package config

import (
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
)

// Environment variables read by the network table
const (
	EnvInfuraURL       = "INFURA_URL"
	EnvInfuraProjectID = "INFURA_PROJECT_ID"
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
	EnvBscscanAPIKey   = "BSCSCAN_API_KEY"
	EnvCoinMarketCap   = "COINMARKETCAP_API_KEY"
	EnvReportGas       = "REPORT_GAS"
)

// LocalRPCURL is the JSON-RPC endpoint of a `hardhat node` / anvil instance
const LocalRPCURL = "http://127.0.0.1:8545"

// LocalChainID is the chain ID of both local networks
const LocalChainID uint64 = 31337

// DefaultNetworks builds the built-in network table from environment variables.
// Missing variables resolve to empty strings; nothing is validated here.
func DefaultNetworks() map[string]*config.Network {
	privateKey := os.Getenv(EnvPrivateKey)
	etherscanKey := os.Getenv(EnvEtherscanAPIKey)
	bscscanKey := os.Getenv(EnvBscscanAPIKey)

	return map[string]*config.Network{
		config.NetworkHardhat: {
			Name:    config.NetworkHardhat,
			ChainID: LocalChainID,
		},
		config.NetworkLocalhost: {
			Name:    config.NetworkLocalhost,
			RPCURL:  LocalRPCURL,
			ChainID: LocalChainID,
		},
		config.NetworkSepolia: {
			Name:     config.NetworkSepolia,
			RPCURL:   os.Getenv(EnvInfuraURL),
			ChainID:  11155111,
			Accounts: accountsFromKey(privateKey),
			Explorer: &config.ExplorerConfig{
				APIURL:     "https://api-sepolia.etherscan.io/api",
				BrowserURL: "https://sepolia.etherscan.io",
				APIKey:     etherscanKey,
			},
		},
		config.NetworkBSCTest: {
			Name:     config.NetworkBSCTest,
			RPCURL:   "https://data-seed-prebsc-1-s1.binance.org:8545",
			ChainID:  97,
			Accounts: accountsFromKey(privateKey),
			Explorer: &config.ExplorerConfig{
				APIURL:     "https://api-testnet.bscscan.com/api",
				BrowserURL: "https://testnet.bscscan.com",
				APIKey:     bscscanKey,
			},
		},
		config.NetworkMainnet: {
			Name:     config.NetworkMainnet,
			RPCURL:   "https://mainnet.infura.io/v3/" + os.Getenv(EnvInfuraProjectID),
			ChainID:  1,
			Accounts: accountsFromKey(privateKey),
			Explorer: &config.ExplorerConfig{
				APIURL:     "https://api.etherscan.io/api",
				BrowserURL: "https://etherscan.io",
				APIKey:     etherscanKey,
			},
		},
		config.NetworkBSC: {
			Name:     config.NetworkBSC,
			RPCURL:   "https://bsc-dataseed1.binance.org",
			ChainID:  56,
			Accounts: accountsFromKey(privateKey),
			Explorer: &config.ExplorerConfig{
				APIURL:     "https://api.bscscan.com/api",
				BrowserURL: "https://bscscan.com",
				APIKey:     bscscanKey,
			},
		},
	}
}

// accountsFromKey returns a one-element list when a key is set and an empty list otherwise
func accountsFromKey(key string) []string {
	if key == "" {
		return []string{}
	}
	return []string{key}
}

// applyNetworkEntries merges usvp.toml network entries over the built-in table
func applyNetworkEntries(networks map[string]*config.Network, entries map[string]config.NetworkEntry) {
	for name, entry := range entries {
		key := strings.ToLower(name)
		network, ok := networks[key]
		if !ok {
			network = &config.Network{Name: key, Accounts: []string{}}
			networks[key] = network
		}

		if entry.URL != "" {
			network.RPCURL = entry.URL
		}
		if entry.ChainID != 0 {
			network.ChainID = entry.ChainID
		}
		if entry.Accounts != nil {
			network.Accounts = lo.Filter(entry.Accounts, func(a string, _ int) bool { return a != "" })
		}
		if entry.ExplorerAPIURL != "" || entry.ExplorerBrowserURL != "" || entry.APIKey != "" {
			if network.Explorer == nil {
				network.Explorer = &config.ExplorerConfig{}
			}
			if entry.ExplorerAPIURL != "" {
				network.Explorer.APIURL = entry.ExplorerAPIURL
			}
			if entry.ExplorerBrowserURL != "" {
				network.Explorer.BrowserURL = entry.ExplorerBrowserURL
			}
			if entry.APIKey != "" {
				network.Explorer.APIKey = entry.APIKey
			}
		}
	}
}

// NetworkResolver resolves network names against the configured table
type NetworkResolver struct {
	networks map[string]*config.Network
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(networks map[string]*config.Network) *NetworkResolver {
	return &NetworkResolver{networks: networks}
}

// Resolve looks a network up by name, case-insensitively
func (r *NetworkResolver) Resolve(name string) (*config.Network, error) {
	if name == "" {
		name = config.DefaultNetwork
	}

	if network, ok := r.networks[strings.ToLower(name)]; ok {
		return network, nil
	}

	return nil, domain.UnknownNetworkErr{
		Name:        name,
		Suggestions: r.suggest(name),
	}
}

// Names returns all configured network names, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Keys(r.networks)
	sort.Strings(names)
	return names
}

// suggest returns configured names that fuzzily match the input, best first
func (r *NetworkResolver) suggest(input string) []string {
	names := r.Names()
	matches := fuzzy.Find(strings.ToLower(input), names)

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}

	if len(suggestions) == 0 {
		// fuzzy only matches subsequences; fall back to a shared prefix
		for _, name := range names {
			if len(input) >= 3 && strings.HasPrefix(name, strings.ToLower(input[:3])) {
				suggestions = append(suggestions, name)
			}
		}
	}

	return suggestions
}

