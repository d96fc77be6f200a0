package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/mechmarket/mech-api/internal/logger"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultWaitTimeout  = 3 * time.Minute
)

// receiptSource is the subset of ethclient the waiter needs.
type receiptSource interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*coretypes.Receipt, error)
}

// ReceiptWaiter polls for a transaction receipt with a bounded deadline.
// There is no unbounded loop: the wait ends with a receipt, an RPC error, or
// a timeout naming the transaction hash.
type ReceiptWaiter struct {
	source   receiptSource
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

// NewReceiptWaiter creates a waiter; zero durations select the defaults.
func NewReceiptWaiter(source receiptSource, interval, timeout time.Duration) *ReceiptWaiter {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	return &ReceiptWaiter{
		source:   source,
		interval: interval,
		timeout:  timeout,
		logger:   logger.Log,
	}
}

// WaitForReceipt blocks until the transaction is mined, the deadline
// expires, or the context is canceled. A mined-but-reverted transaction is
// returned as a receipt with failed status; judging it is the caller's job.
func (w *ReceiptWaiter) WaitForReceipt(ctx context.Context, txHash common.Hash) (*coretypes.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		receipt, err := w.source.TransactionReceipt(ctx, txHash)
		if err == nil {
			w.logger.Debug("Transaction mined",
				zap.String("tx_hash", txHash.Hex()),
				zap.Uint64("block_number", receipt.BlockNumber.Uint64()),
				zap.Uint64("status", receipt.Status),
			)
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to fetch receipt for %s: %w", txHash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out after %s waiting for receipt of %s: %w", w.timeout, txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
