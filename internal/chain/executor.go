package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/logger"
	"go.uber.org/zap"
)

// txBackend is the subset of ethclient the executor needs; split out so
// tests can stub submission without an RPC endpoint.
type txBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*coretypes.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *coretypes.Transaction) error
}

// ContractResolver maps contract names to their deployment address and ABI.
// *contracts.Set satisfies it.
type ContractResolver interface {
	Resolve(name string) (common.Address, abi.ABI, error)
}

// TxExecutor signs and submits named contract method calls with a single
// configured key. Nonces come from PendingNonceAt; the purchase sequence
// never has more than one transaction in flight, so no allocator is needed.
type TxExecutor struct {
	backend  txBackend
	resolver ContractResolver
	chainID  *big.Int
	key      *ecdsa.PrivateKey
	sender   common.Address
	logger   *zap.Logger
}

// NewTxExecutor creates an executor for the given chain and signing key.
func NewTxExecutor(backend txBackend, resolver ContractResolver, chainID *big.Int, key *ecdsa.PrivateKey) *TxExecutor {
	return &TxExecutor{
		backend:  backend,
		resolver: resolver,
		chainID:  new(big.Int).Set(chainID),
		key:      key,
		sender:   crypto.PubkeyToAddress(key.PublicKey),
		logger:   logger.Log,
	}
}

// Sender returns the address transactions are signed with.
func (e *TxExecutor) Sender() common.Address {
	return e.sender
}

// ExecuteTransaction packs, signs and broadcasts one contract method call
// and returns its hash. It does not wait for inclusion; callers pair it with
// a ReceiptWaiter.
func (e *TxExecutor) ExecuteTransaction(ctx context.Context, contract string, method string, args []interface{}, txArgs interfaces.TxArgs) (common.Hash, error) {
	if txArgs.Sender != (common.Address{}) && txArgs.Sender != e.sender {
		return common.Hash{}, fmt.Errorf("executor signs as %s, cannot send from %s", e.sender.Hex(), txArgs.Sender.Hex())
	}

	address, parsedABI, err := e.resolver.Resolve(contract)
	if err != nil {
		return common.Hash{}, err
	}

	input, err := parsedABI.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack %s.%s: %w", contract, method, err)
	}

	value := txArgs.Value
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := e.backend.PendingNonceAt(ctx, e.sender)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch nonce for %s: %w", e.sender.Hex(), err)
	}

	tip, err := e.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch gas tip cap: %w", err)
	}
	head, err := e.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch latest header: %w", err)
	}
	// feeCap = 2*baseFee + tip keeps the tx valid across moderate base fee
	// swings without overpaying; the effective price is still market-set.
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gasLimit := txArgs.GasLimit
	if gasLimit == 0 {
		gasLimit, err = e.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:      e.sender,
			To:        &address,
			Value:     value,
			Data:      input,
			GasFeeCap: feeCap,
			GasTipCap: tip,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas for %s.%s: %w", contract, method, err)
		}
	}

	tx := coretypes.NewTx(&coretypes.DynamicFeeTx{
		ChainID:   e.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &address,
		Value:     value,
		Data:      input,
	})

	signed, err := coretypes.SignTx(tx, coretypes.LatestSignerForChainID(e.chainID), e.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign %s.%s transaction: %w", contract, method, err)
	}

	if err := e.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send %s.%s transaction: %w", contract, method, err)
	}

	e.logger.Info("Submitted transaction",
		zap.String("contract", contract),
		zap.String("method", method),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce),
		zap.String("value", value.String()),
	)

	return signed.Hash(), nil
}
