package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// ConnectorAdapter implements the ChainConnector interface using ethclient, or
// an in-process simulated chain for the hardhat network
type ConnectorAdapter struct {
	log *slog.Logger
}

// NewConnectorAdapter creates a new chain connector adapter
func NewConnectorAdapter(log *slog.Logger) *ConnectorAdapter {
	return &ConnectorAdapter{log: log.With("component", "ChainConnector")}
}

// Connect establishes connection to the blockchain
func (c *ConnectorAdapter) Connect(ctx context.Context, network *config.Network) (usecase.Chain, error) {
	if network.IsInProcess() {
		c.log.Debug("starting in-process chain", "chain_id", network.ChainID)
		return NewSimulatedChain(network.ChainID)
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for network %s", network.Name)
	}

	c.log.Debug("dialing RPC", "network", network.Name)
	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if network.ChainID != 0 && networkChainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: %s expects %d, RPC reports %d",
			domain.ErrChainIDMismatch, network.Name, network.ChainID, networkChainID.Uint64())
	}

	return client, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainConnector = (*ConnectorAdapter)(nil)
