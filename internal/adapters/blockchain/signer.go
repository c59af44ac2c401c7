package blockchain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// hardhatDevKey is the private key of the first default Hardhat / anvil account.
// It is public and only ever used on local networks.
const hardhatDevKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// HardhatDevAccount is the address of hardhatDevKey
var HardhatDevAccount = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

// SignerAdapter resolves the deployer from the network's configured accounts
type SignerAdapter struct{}

// NewSignerAdapter creates a new signer adapter
func NewSignerAdapter() *SignerAdapter {
	return &SignerAdapter{}
}

// ResolveSigner returns the first configured account. Local networks fall back
// to the Hardhat dev account.
func (s *SignerAdapter) ResolveSigner(network *config.Network) (*models.Signer, error) {
	var keyHex string
	switch {
	case len(network.Accounts) > 0:
		keyHex = network.Accounts[0]
	case network.IsLocal():
		keyHex = hardhatDevKey
	default:
		return nil, fmt.Errorf("%w: network %s has no accounts, set PRIVATE_KEY", domain.ErrNoSigner, network.Name)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key for network %s: %w", network.Name, err)
	}

	return &models.Signer{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}, nil
}

var _ usecase.SignerResolver = (*SignerAdapter)(nil)
