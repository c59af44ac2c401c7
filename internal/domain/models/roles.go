package models

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/usvp-token/usvp-deploy/internal/domain"
)

// Hard-coded role holders passed to the USVP constructor.
const (
	DefaultAdminAddress = "0xbf646CD04B14eb9159d2000e73C4C339A3C980d9" // admin and pauser
	MinterAddress       = "0x57274FFE9661e32380fAdc50C59A3b470b1E9CA4" // minter and limiter
	CustodianAddress    = "0xB04196E11CD8FC207BC52DeCeD7CEA2445B20323"
)

// RoleAssignment holds the five addresses given to the constructor
type RoleAssignment struct {
	DefaultAdmin string `json:"defaultAdmin" yaml:"defaultAdmin" toml:"default_admin" validate:"required,eth_addr"`
	Pauser       string `json:"pauser" yaml:"pauser" toml:"pauser" validate:"required,eth_addr"`
	Minter       string `json:"minter" yaml:"minter" toml:"minter" validate:"required,eth_addr"`
	Limiter      string `json:"limiter" yaml:"limiter" toml:"limiter" validate:"required,eth_addr"`
	Custodian    string `json:"custodian" yaml:"custodian" toml:"custodian" validate:"required,eth_addr"`
}

// DefaultRoles returns the role map used when usvp.toml doesn't override it
func DefaultRoles() RoleAssignment {
	return RoleAssignment{
		DefaultAdmin: DefaultAdminAddress,
		Pauser:       DefaultAdminAddress,
		Minter:       MinterAddress,
		Limiter:      MinterAddress,
		Custodian:    CustodianAddress,
	}
}

// Merge returns a copy of r with every non-empty field of override applied
func (r RoleAssignment) Merge(override RoleAssignment) RoleAssignment {
	if override.DefaultAdmin != "" {
		r.DefaultAdmin = override.DefaultAdmin
	}
	if override.Pauser != "" {
		r.Pauser = override.Pauser
	}
	if override.Minter != "" {
		r.Minter = override.Minter
	}
	if override.Limiter != "" {
		r.Limiter = override.Limiter
	}
	if override.Custodian != "" {
		r.Custodian = override.Custodian
	}
	return r
}

// ConstructorArgs returns the addresses in constructor order
func (r RoleAssignment) ConstructorArgs() []common.Address {
	return []common.Address{
		common.HexToAddress(r.DefaultAdmin),
		common.HexToAddress(r.Pauser),
		common.HexToAddress(r.Minter),
		common.HexToAddress(r.Limiter),
		common.HexToAddress(r.Custodian),
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks that every role holder is a well-formed hex address
func (r RoleAssignment) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w for role %s: %q", domain.ErrInvalidAddress, fe.Field(), fe.Value())
		}
		return fmt.Errorf("invalid role assignment: %w", err)
	}
	return nil
}
