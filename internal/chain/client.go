// Package chain wraps go-ethereum RPC access: dialing, transaction
// submission and receipt waiting. Everything else in the client consumes
// this package through the narrow interfaces in internal/interfaces.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/mechmarket/mech-api/internal/logger"
	"go.uber.org/zap"
)

// Client is a thin wrapper around an ethclient connection that remembers the
// chain ID it connected to.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	logger  *zap.Logger
}

// Dial connects to the RPC endpoint and verifies the chain ID against the
// configured one, so a wrong endpoint fails at startup rather than as a
// reverted transaction later.
func Dial(ctx context.Context, rpcURL string, expectedChainID int64) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint %s: %w", rpcURL, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to fetch chain ID from %s: %w", rpcURL, err)
	}
	if expectedChainID != 0 && chainID.Int64() != expectedChainID {
		eth.Close()
		return nil, fmt.Errorf("RPC endpoint %s serves chain %d, expected %d", rpcURL, chainID.Int64(), expectedChainID)
	}

	logger.Info("Connected to chain RPC",
		zap.String("rpc_url", rpcURL),
		zap.Int64("chain_id", chainID.Int64()),
	)

	return &Client{
		eth:     eth,
		chainID: chainID,
		logger:  logger.Log,
	}, nil
}

// Eth exposes the underlying ethclient for contract calls and tx submission.
func (c *Client) Eth() *ethclient.Client {
	return c.eth
}

// ChainID returns the connected chain's ID.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// BalanceAt reads the native-token balance of an account at the latest
// block. Satisfies interfaces.NativeLedger.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read native balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}
