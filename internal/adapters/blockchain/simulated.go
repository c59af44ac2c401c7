package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/eth/ethconfig"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/node"
	"github.com/ethereum/go-ethereum/params"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// devAccountBalance is what the dev account starts with on the in-process chain
var devAccountBalance = new(big.Int).Mul(big.NewInt(10_000), big.NewInt(params.Ether))

// SimulatedChain is an in-process chain that mines a block for every sent
// transaction, the way the Hardhat network automines
type SimulatedChain struct {
	simulated.Client
	backend *simulated.Backend
}

// NewSimulatedChain starts an in-process chain with the dev account funded
func NewSimulatedChain(chainID uint64) (*SimulatedChain, error) {
	key, err := crypto.HexToECDSA(hardhatDevKey)
	if err != nil {
		return nil, fmt.Errorf("invalid dev key: %w", err)
	}

	alloc := types.GenesisAlloc{
		crypto.PubkeyToAddress(key.PublicKey): {Balance: devAccountBalance},
	}

	backend := simulated.NewBackend(alloc, func(_ *node.Config, ethConf *ethconfig.Config) {
		chainConfig := *params.AllDevChainProtocolChanges
		chainConfig.ChainID = new(big.Int).SetUint64(chainID)
		ethConf.Genesis.Config = &chainConfig
	})

	return &SimulatedChain{
		Client:  backend.Client(),
		backend: backend,
	}, nil
}

// SendTransaction submits tx and mines it immediately
func (c *SimulatedChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

// Close stops the chain
func (c *SimulatedChain) Close() {
	_ = c.backend.Close()
}

var _ usecase.Chain = (*SimulatedChain)(nil)
