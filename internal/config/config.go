package config

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/helpers"
)

// PaymentMode distinguishes how a chain settles the subscription payment.
// It replaces the zero-address sentinel: config consumers branch on the mode,
// never on the token address.
type PaymentMode int

const (
	// PaymentModeNative settles in the chain's native token; the agreement
	// creation transaction carries the payment as its value.
	PaymentModeNative PaymentMode = iota
	// PaymentModeToken settles in an ERC-20 token and requires an approval
	// transaction before the agreement creation.
	PaymentModeToken
)

// String returns a human-readable payment mode name.
func (m PaymentMode) String() string {
	switch m {
	case PaymentModeNative:
		return "native"
	case PaymentModeToken:
		return "token"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// NVMConfig is the chain-scoped subscription configuration. It is built once
// per chain selection and immutable afterwards; only the RPC endpoint honors
// an environment override at load time.
type NVMConfig struct {
	ChainName string
	ChainID   int64
	RPCURL    string

	PaymentMode  PaymentMode
	TokenAddress common.Address
	TokenSymbol  string
	// TokenDecimals is display-only; all arithmetic stays in smallest units.
	TokenDecimals int

	// Plan parameters. Amounts are smallest-unit base-10 integer strings.
	PlanDID             string
	PlanFee             string
	PlanPrice           string
	SubscriptionCredits string

	// Contracts maps contract names to their per-chain deployment addresses.
	Contracts map[string]common.Address
}

// FeeAmount returns the marketplace fee in smallest units.
func (c *NVMConfig) FeeAmount() (*big.Int, error) {
	return helpers.ParseAmount(c.PlanFee)
}

// PriceAmount returns the plan price in smallest units.
func (c *NVMConfig) PriceAmount() (*big.Int, error) {
	return helpers.ParseAmount(c.PlanPrice)
}

// RequiredAmount returns fee + price, the total a purchase must fund.
func (c *NVMConfig) RequiredAmount() (*big.Int, error) {
	fee, err := c.FeeAmount()
	if err != nil {
		return nil, fmt.Errorf("invalid plan fee: %w", err)
	}
	price, err := c.PriceAmount()
	if err != nil {
		return nil, fmt.Errorf("invalid plan price: %w", err)
	}
	return new(big.Int).Add(fee, price), nil
}

// CreditsAmount returns the number of credits the plan grants.
func (c *NVMConfig) CreditsAmount() (*big.Int, error) {
	return helpers.ParseAmount(c.SubscriptionCredits)
}

// ContractAddress returns the deployment address for a named contract.
func (c *NVMConfig) ContractAddress(name string) (common.Address, error) {
	addr, ok := c.Contracts[name]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no %s contract configured for chain %s", name, c.ChainName)
	}
	return addr, nil
}

// LoadChain builds the configuration for a supported chain. MECH_RPC_URL
// overrides the built-in RPC endpoint when set.
func LoadChain(chainName string) (*NVMConfig, error) {
	name := strings.ToLower(strings.TrimSpace(chainName))
	base, ok := chainTable[name]
	if !ok {
		return nil, fmt.Errorf("unsupported chain %q (supported: %s)", chainName, strings.Join(SupportedChains(), ", "))
	}

	// Copy so the table entry stays pristine across loads.
	cfg := base
	cfg.Contracts = make(map[string]common.Address, len(base.Contracts))
	for k, v := range base.Contracts {
		cfg.Contracts[k] = v
	}

	if rpcURL := strings.TrimSpace(os.Getenv("MECH_RPC_URL")); rpcURL != "" {
		cfg.RPCURL = rpcURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *NVMConfig) validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("no RPC endpoint configured for chain %s", c.ChainName)
	}
	if c.PlanDID == "" {
		return fmt.Errorf("no subscription plan configured for chain %s", c.ChainName)
	}

	if _, err := helpers.NormalizeDID(c.PlanDID); err != nil {
		return fmt.Errorf("invalid plan DID for chain %s: %w", c.ChainName, err)
	}
	if _, err := c.RequiredAmount(); err != nil {
		return fmt.Errorf("invalid plan amounts for chain %s: %w", c.ChainName, err)
	}
	if _, err := c.CreditsAmount(); err != nil {
		return fmt.Errorf("invalid subscription credits for chain %s: %w", c.ChainName, err)
	}

	if c.PaymentMode == PaymentModeToken && c.TokenAddress == (common.Address{}) {
		return fmt.Errorf("chain %s pays in %s but no token contract is configured", c.ChainName, c.TokenSymbol)
	}
	if c.PaymentMode == PaymentModeNative && c.TokenAddress != (common.Address{}) {
		return fmt.Errorf("chain %s is native-payment but has a token contract configured", c.ChainName)
	}

	return nil
}
