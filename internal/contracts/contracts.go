// Package contracts provides typed adapters over the deployed protocol
// contracts, one per contract role. All reads go through eth_call against the
// per-chain deployment addresses; condition hashing in particular is always a
// contract read so the returned values agree bit-for-bit with what the chain
// computes during settlement.
package contracts

import (
	"context"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Caller is the read-only chain access the adapters require.
// *ethclient.Client satisfies it.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// boundContract couples a deployment address with its parsed ABI.
type boundContract struct {
	name    string
	address common.Address
	abi     abi.ABI
	caller  Caller
}

func bind(name string, address common.Address, rawABI string, caller Caller) (*boundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s ABI", name)
	}
	return &boundContract{
		name:    name,
		address: address,
		abi:     parsed,
		caller:  caller,
	}, nil
}

// call packs a method invocation, executes it as a read-only call against the
// latest block, and returns the unpacked outputs. Errors propagate unmodified
// apart from context; no call ever falls back to a default value.
func (b *boundContract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := b.abi.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s.%s", b.name, method)
	}

	msg := ethereum.CallMsg{To: &b.address, Data: input}
	output, err := b.caller.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "call to %s.%s failed", b.name, method)
	}
	if len(output) == 0 {
		return nil, errors.Errorf("call to %s.%s returned no data (wrong address or chain?)", b.name, method)
	}

	results, err := b.abi.Unpack(method, output)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unpack %s.%s result", b.name, method)
	}
	return results, nil
}

// callHash is the common case of a single bytes32 result.
func (b *boundContract) callHash(ctx context.Context, method string, args ...interface{}) (common.Hash, error) {
	results, err := b.call(ctx, method, args...)
	if err != nil {
		return common.Hash{}, err
	}
	return asHash(b.name, method, results, 0)
}

func asHash(contract, method string, results []interface{}, idx int) (common.Hash, error) {
	if idx >= len(results) {
		return common.Hash{}, errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].([32]byte)
	if !ok {
		return common.Hash{}, errors.Errorf("%s.%s: result %d is %T, expected bytes32", contract, method, results[idx], results[idx])
	}
	return common.Hash(value), nil
}

func asAddress(contract, method string, results []interface{}, idx int) (common.Address, error) {
	if idx >= len(results) {
		return common.Address{}, errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].(common.Address)
	if !ok {
		return common.Address{}, errors.Errorf("%s.%s: result %d is %T, expected address", contract, method, results[idx], results[idx])
	}
	return value, nil
}

func asBigInt(contract, method string, results []interface{}, idx int) (*big.Int, error) {
	if idx >= len(results) {
		return nil, errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].(*big.Int)
	if !ok {
		return nil, errors.Errorf("%s.%s: result %d is %T, expected uint256", contract, method, results[idx], results[idx])
	}
	return value, nil
}

func asBool(contract, method string, results []interface{}, idx int) (bool, error) {
	if idx >= len(results) {
		return false, errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].(bool)
	if !ok {
		return false, errors.Errorf("%s.%s: result %d is %T, expected bool", contract, method, results[idx], results[idx])
	}
	return value, nil
}

func asString(contract, method string, results []interface{}, idx int) (string, error) {
	if idx >= len(results) {
		return "", errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].(string)
	if !ok {
		return "", errors.Errorf("%s.%s: result %d is %T, expected string", contract, method, results[idx], results[idx])
	}
	return value, nil
}

func asAddressSlice(contract, method string, results []interface{}, idx int) ([]common.Address, error) {
	if idx >= len(results) {
		return nil, errors.Errorf("%s.%s: missing result %d", contract, method, idx)
	}
	value, ok := results[idx].([]common.Address)
	if !ok {
		return nil, errors.Errorf("%s.%s: result %d is %T, expected address[]", contract, method, results[idx], results[idx])
	}
	return value, nil
}
