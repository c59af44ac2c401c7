package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// Token is a handle on a deployed USVP contract
type Token struct {
	address  common.Address
	tx       *types.Transaction
	abi      abi.ABI
	backend  usecase.Chain
	instance *bind.BoundContract
}

// NewToken wraps a contract at address. tx is the creation transaction and may
// be nil for contracts deployed earlier.
func NewToken(address common.Address, tx *types.Transaction, contractABI abi.ABI, backend usecase.Chain) *Token {
	return &Token{
		address:  address,
		tx:       tx,
		abi:      contractABI,
		backend:  backend,
		instance: bind.NewBoundContract(address, contractABI, backend, backend, backend),
	}
}

// Address returns the contract address
func (t *Token) Address() common.Address {
	return t.address
}

// DeployTransaction returns the creation transaction
func (t *Token) DeployTransaction() *types.Transaction {
	return t.tx
}

// WaitForDeployment blocks until the creation transaction is mined
func (t *Token) WaitForDeployment(ctx context.Context) (*types.Receipt, error) {
	if t.tx == nil {
		return nil, fmt.Errorf("no creation transaction for %s", t.address.Hex())
	}

	receipt, err := bind.WaitMined(ctx, t.backend, t.tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", t.tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: tx %s", domain.ErrDeploymentReverted, t.tx.Hash().Hex())
	}
	if receipt.ContractAddress != (common.Address{}) {
		t.address = receipt.ContractAddress
	}
	return receipt, nil
}

// RoleID reads a bytes32 role constant such as PAUSER_ROLE
func (t *Token) RoleID(ctx context.Context, name string) ([32]byte, error) {
	return call[[32]byte](ctx, t, name)
}

// HasRole calls hasRole(role, account)
func (t *Token) HasRole(ctx context.Context, role [32]byte, account common.Address) (bool, error) {
	return call[bool](ctx, t, "hasRole", role, account)
}

// TotalSupply calls totalSupply()
func (t *Token) TotalSupply(ctx context.Context) (*big.Int, error) {
	return call[*big.Int](ctx, t, "totalSupply")
}

// RemainingSupply calls remainingSupply()
func (t *Token) RemainingSupply(ctx context.Context) (*big.Int, error) {
	return call[*big.Int](ctx, t, "remainingSupply")
}

// call packs a single-output view call and converts its result to T
func call[T any](ctx context.Context, t *Token, method string, args ...any) (T, error) {
	var zero T

	calldata, err := t.abi.Pack(method, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	return bind.Call(t.instance, &bind.CallOpts{Context: ctx}, calldata, func(output []byte) (T, error) {
		out, err := t.abi.Unpack(method, output)
		if err != nil {
			return zero, fmt.Errorf("failed to unpack %s: %w", method, err)
		}
		if len(out) != 1 {
			return zero, fmt.Errorf("%s returned %d values, expected 1", method, len(out))
		}
		return *abi.ConvertType(out[0], new(T)).(*T), nil
	})
}

var _ usecase.TokenContract = (*Token)(nil)
