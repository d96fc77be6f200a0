package interfaces

//go:generate mockgen -source=clients.go -destination=../mocks/clients.go -package=mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
)

// TxArgs carries the transaction-level options for an executed method call.
// Signing, nonce allocation and gas pricing are the executor's concern.
type TxArgs struct {
	Sender common.Address
	// Value is the native amount attached to the call; nil means zero.
	Value *big.Int
	// GasLimit of 0 lets the executor estimate.
	GasLimit uint64
}

// TransactionExecutor signs and submits a single named contract method call
// and returns its transaction hash. It does not wait for inclusion.
type TransactionExecutor interface {
	ExecuteTransaction(ctx context.Context, contract string, method string, args []interface{}, txArgs TxArgs) (common.Hash, error)
}

// ReceiptWaiter blocks until the transaction is mined and returns its
// receipt, subject to the waiter's own timeout policy.
type ReceiptWaiter interface {
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*coretypes.Receipt, error)
}

// NativeLedger reads native-token balances from the chain.
type NativeLedger interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}
