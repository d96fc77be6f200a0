package interfaces

//go:generate mockgen -source=contracts.go -destination=../mocks/contracts.go -package=mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/types/business"
)

// DIDRegistry resolves plan metadata documents from the on-chain registry.
type DIDRegistry interface {
	GetDDO(ctx context.Context, did common.Hash) (business.DDO, error)
}

// NVMConfigReader reads marketplace-level configuration from the on-chain
// config contract.
type NVMConfigReader interface {
	FeeReceiver(ctx context.Context) (common.Address, error)
}

// LockPaymentCondition wraps the lock condition contract's hashing functions.
// HashValues must agree bit-for-bit with what the contract computes for the
// same inputs, which is why it is a read-call rather than a local keccak.
type LockPaymentCondition interface {
	HashValues(ctx context.Context, did common.Hash, rewardAddress, tokenAddress common.Address, amounts [2]*big.Int, receivers [2]common.Address) (common.Hash, error)
	GenerateID(ctx context.Context, agreementID, hash common.Hash) (common.Hash, error)
	Address() common.Address
}

// TransferNFTCondition wraps the credit transfer condition contract.
type TransferNFTCondition interface {
	HashValues(ctx context.Context, did common.Hash, from, to common.Address, amount *big.Int, lockID common.Hash, nftAddress common.Address, isTransfer bool) (common.Hash, error)
	GenerateID(ctx context.Context, agreementID, hash common.Hash) (common.Hash, error)
	Address() common.Address
}

// EscrowPaymentCondition wraps the escrow release condition contract. Its
// deployed address doubles as the reward address holding locked funds.
type EscrowPaymentCondition interface {
	HashValues(ctx context.Context, did common.Hash, amounts [2]*big.Int, receivers [2]common.Address, sender, receiver, tokenAddress common.Address, lockID, releaseID common.Hash) (common.Hash, error)
	GenerateID(ctx context.Context, agreementID, hash common.Hash) (common.Hash, error)
	Address() common.Address
}

// AgreementStoreManager derives agreement identifiers on-chain.
type AgreementStoreManager interface {
	AgreementID(ctx context.Context, seed common.Hash, subscriber common.Address) (common.Hash, error)
}

// NFTCredits reads subscription credit balances from the plan's ERC-1155
// credit contract.
type NFTCredits interface {
	BalanceOf(ctx context.Context, owner common.Address, did common.Hash) (*big.Int, error)
	Address() common.Address
}

// ERC20Token reads balances from the configured payment token. Approval
// transactions go through the TransactionExecutor, not this reader.
type ERC20Token interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Address() common.Address
}
