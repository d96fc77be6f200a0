package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NVMConfigContract reads marketplace-level settings from the on-chain
// config contract.
type NVMConfigContract struct {
	bound *boundContract
}

// FeeReceiver returns the marketplace fee receiver address. A zero result is
// returned as-is; treating it as a misconfiguration is the caller's call.
func (c *NVMConfigContract) FeeReceiver(ctx context.Context) (common.Address, error) {
	const method = "getFeeReceiver"

	results, err := c.bound.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	return asAddress(c.bound.name, method, results, 0)
}

// MarketplaceFee returns the marketplace fee in parts-per-million.
func (c *NVMConfigContract) MarketplaceFee(ctx context.Context) (*big.Int, error) {
	const method = "getMarketplaceFee"

	results, err := c.bound.call(ctx, method)
	if err != nil {
		return nil, err
	}
	return asBigInt(c.bound.name, method, results, 0)
}

// Address returns the config contract deployment address.
func (c *NVMConfigContract) Address() common.Address {
	return c.bound.address
}
