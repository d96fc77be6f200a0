package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ERC20Contract reads balances and allowances from the configured payment
// token. Approvals are submitted through the transaction executor, not here.
type ERC20Contract struct {
	bound  *boundContract
	symbol string
}

// BalanceOf returns the token balance of an account.
func (c *ERC20Contract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	const method = "balanceOf"

	results, err := c.bound.call(ctx, method, owner)
	if err != nil {
		return nil, err
	}
	return asBigInt(c.bound.name, method, results, 0)
}

// Allowance returns the amount the spender may move on the owner's behalf.
func (c *ERC20Contract) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	const method = "allowance"

	results, err := c.bound.call(ctx, method, owner, spender)
	if err != nil {
		return nil, err
	}
	return asBigInt(c.bound.name, method, results, 0)
}

// Symbol returns the configured token symbol, for diagnostics.
func (c *ERC20Contract) Symbol() string {
	return c.symbol
}

// Address returns the token contract address.
func (c *ERC20Contract) Address() common.Address {
	return c.bound.address
}
