package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// conditionContract carries the behavior shared by all three condition
// contracts: deriving a condition ID from (agreementID, parameter hash).
type conditionContract struct {
	bound *boundContract
}

// GenerateID derives the condition identifier for an agreement and parameter
// hash, via the contract's own derivation.
func (c *conditionContract) GenerateID(ctx context.Context, agreementID, hash common.Hash) (common.Hash, error) {
	return c.bound.callHash(ctx, "generateId", agreementID, hash)
}

// Address returns the condition contract deployment address.
func (c *conditionContract) Address() common.Address {
	return c.bound.address
}

// LockPaymentConditionContract wraps the payment lock condition.
type LockPaymentConditionContract struct {
	conditionContract
}

// HashValues computes the lock condition parameter hash on-chain.
func (c *LockPaymentConditionContract) HashValues(ctx context.Context, did common.Hash, rewardAddress, tokenAddress common.Address, amounts [2]*big.Int, receivers [2]common.Address) (common.Hash, error) {
	return c.bound.callHash(ctx, "hashValues",
		did,
		rewardAddress,
		tokenAddress,
		[]*big.Int{amounts[0], amounts[1]},
		[]common.Address{receivers[0], receivers[1]},
	)
}

// TransferNFTConditionContract wraps the credit transfer condition.
type TransferNFTConditionContract struct {
	conditionContract
}

// HashValues computes the transfer condition parameter hash on-chain.
func (c *TransferNFTConditionContract) HashValues(ctx context.Context, did common.Hash, from, to common.Address, amount *big.Int, lockID common.Hash, nftAddress common.Address, isTransfer bool) (common.Hash, error) {
	return c.bound.callHash(ctx, "hashValues",
		did,
		from,
		to,
		amount,
		lockID,
		nftAddress,
		isTransfer,
	)
}

// EscrowPaymentConditionContract wraps the escrow release condition. Its
// deployment address is also the reward address that holds locked funds
// until release.
type EscrowPaymentConditionContract struct {
	conditionContract
}

// HashValues computes the escrow condition parameter hash on-chain.
func (c *EscrowPaymentConditionContract) HashValues(ctx context.Context, did common.Hash, amounts [2]*big.Int, receivers [2]common.Address, sender, receiver, tokenAddress common.Address, lockID, releaseID common.Hash) (common.Hash, error) {
	return c.bound.callHash(ctx, "hashValues",
		did,
		[]*big.Int{amounts[0], amounts[1]},
		[]common.Address{receivers[0], receivers[1]},
		sender,
		receiver,
		tokenAddress,
		lockID,
		releaseID,
	)
}
