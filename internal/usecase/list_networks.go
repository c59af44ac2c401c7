package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string
	ChainID     uint64
	Local       bool
	HasSigner   bool
	ExplorerURL string
	Verifiable  bool
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{config: cfg}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networks := lo.MapToSlice(uc.config.Networks, func(name string, n *config.Network) NetworkStatus {
		status := NetworkStatus{
			Name:      name,
			ChainID:   n.ChainID,
			Local:     n.IsLocal(),
			HasSigner: n.HasSigner(),
		}
		if n.Explorer != nil {
			status.ExplorerURL = n.Explorer.BrowserURL
			status.Verifiable = n.Explorer.APIURL != "" && n.Explorer.APIKey != ""
		}
		return status
	})

	sort.Slice(networks, func(i, j int) bool {
		if networks[i].Local != networks[j].Local {
			return networks[i].Local
		}
		return networks[i].Name < networks[j].Name
	})

	result := &ListNetworksResult{Networks: networks}
	if uc.config.Network != nil {
		result.Current = uc.config.Network.Name
	}
	return result, nil
}
