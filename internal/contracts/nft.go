package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NFTCreditsContract reads subscription credit balances from the plan's
// ERC-1155 credit contract. Token IDs are the plan DID interpreted as a
// uint256.
type NFTCreditsContract struct {
	bound *boundContract
}

// BalanceOf returns the credit balance an owner holds under a plan DID.
func (c *NFTCreditsContract) BalanceOf(ctx context.Context, owner common.Address, did common.Hash) (*big.Int, error) {
	const method = "balanceOf"

	results, err := c.bound.call(ctx, method, owner, new(big.Int).SetBytes(did.Bytes()))
	if err != nil {
		return nil, err
	}
	return asBigInt(c.bound.name, method, results, 0)
}

// Address returns the credit contract deployment address.
func (c *NFTCreditsContract) Address() common.Address {
	return c.bound.address
}
