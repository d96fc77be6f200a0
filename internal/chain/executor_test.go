package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechmarket/mech-api/internal/interfaces"
)

const approveABI = `[{"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}]`

type stubBackend struct {
	nonce        uint64
	tip          *big.Int
	baseFee      *big.Int
	gasEstimate  uint64
	estimateMsgs []ethereum.CallMsg
	sent         []*coretypes.Transaction
	sendErr      error
}

func (b *stubBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *stubBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return b.tip, nil
}

func (b *stubBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*coretypes.Header, error) {
	return &coretypes.Header{BaseFee: b.baseFee}, nil
}

func (b *stubBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	b.estimateMsgs = append(b.estimateMsgs, msg)
	return b.gasEstimate, nil
}

func (b *stubBackend) SendTransaction(ctx context.Context, tx *coretypes.Transaction) error {
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	return nil
}

type stubResolver struct {
	address common.Address
	abi     abi.ABI
	err     error
}

func (r *stubResolver) Resolve(name string) (common.Address, abi.ABI, error) {
	return r.address, r.abi, r.err
}

func newTestExecutor(t *testing.T, backend *stubBackend) (*TxExecutor, common.Address) {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(approveABI))
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	contractAddr := common.HexToAddress("0x6000000000000000000000000000000000000006")
	executor := NewTxExecutor(backend, &stubResolver{address: contractAddr, abi: parsed}, big.NewInt(8453), key)
	return executor, contractAddr
}

func TestTxExecutor_ExecuteTransaction(t *testing.T) {
	backend := &stubBackend{
		nonce:       7,
		tip:         big.NewInt(1_000_000_000),
		baseFee:     big.NewInt(2_000_000_000),
		gasEstimate: 60_000,
	}
	executor, contractAddr := newTestExecutor(t, backend)

	spender := common.HexToAddress("0x01")
	amount := big.NewInt(5000000)

	txHash, err := executor.ExecuteTransaction(context.Background(), "ERC20", "approve",
		[]interface{}{spender, amount}, interfaces.TxArgs{Sender: executor.Sender()})
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, txHash)

	require.Len(t, backend.sent, 1)
	sent := backend.sent[0]
	assert.Equal(t, txHash, sent.Hash())
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, &contractAddr, sent.To())
	assert.Equal(t, uint64(60_000), sent.Gas())
	assert.Equal(t, int64(0), sent.Value().Int64())
	assert.Equal(t, coretypes.DynamicFeeTxType, int(sent.Type()))

	// feeCap = tip + 2*baseFee
	assert.Equal(t, big.NewInt(5_000_000_000), sent.GasFeeCap())
	assert.Equal(t, backend.tip, sent.GasTipCap())

	// Calldata carries the packed approve(spender, amount) invocation.
	parsed, err := abi.JSON(strings.NewReader(approveABI))
	require.NoError(t, err)
	wantData, err := parsed.Pack("approve", spender, amount)
	require.NoError(t, err)
	assert.Equal(t, wantData, sent.Data())

	// Recoverable signature for the configured chain ID.
	signer := coretypes.LatestSignerForChainID(big.NewInt(8453))
	from, err := coretypes.Sender(signer, sent)
	require.NoError(t, err)
	assert.Equal(t, executor.Sender(), from)
}

func TestTxExecutor_ExecuteTransaction_WithValueAndGasLimit(t *testing.T) {
	backend := &stubBackend{
		nonce:   1,
		tip:     big.NewInt(1),
		baseFee: big.NewInt(1),
	}
	executor, _ := newTestExecutor(t, backend)

	value := big.NewInt(1000000)
	_, err := executor.ExecuteTransaction(context.Background(), "ERC20", "approve",
		[]interface{}{common.HexToAddress("0x01"), big.NewInt(1)},
		interfaces.TxArgs{Sender: executor.Sender(), Value: value, GasLimit: 90_000})
	require.NoError(t, err)

	require.Len(t, backend.sent, 1)
	assert.Equal(t, value, backend.sent[0].Value())
	assert.Equal(t, uint64(90_000), backend.sent[0].Gas())
	// An explicit gas limit skips estimation.
	assert.Empty(t, backend.estimateMsgs)
}

func TestTxExecutor_ExecuteTransaction_RejectsForeignSender(t *testing.T) {
	executor, _ := newTestExecutor(t, &stubBackend{tip: big.NewInt(1), baseFee: big.NewInt(1)})

	_, err := executor.ExecuteTransaction(context.Background(), "ERC20", "approve",
		[]interface{}{common.HexToAddress("0x01"), big.NewInt(1)},
		interfaces.TxArgs{Sender: common.HexToAddress("0xdead")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot send from")
}

func TestTxExecutor_ExecuteTransaction_SendFailure(t *testing.T) {
	backend := &stubBackend{
		tip:         big.NewInt(1),
		baseFee:     big.NewInt(1),
		gasEstimate: 21_000,
		sendErr:     errors.New("nonce too low"),
	}
	executor, _ := newTestExecutor(t, backend)

	_, err := executor.ExecuteTransaction(context.Background(), "ERC20", "approve",
		[]interface{}{common.HexToAddress("0x01"), big.NewInt(1)},
		interfaces.TxArgs{Sender: executor.Sender()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send ERC20.approve transaction")
}
