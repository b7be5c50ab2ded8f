package transactions

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReceipts struct {
	mu sync.Mutex
	// receipt becomes visible after `after` polls
	after     int
	polls     int
	receipt   *types.Receipt
	txUnknown bool
	block     uint64
}

func (s *stubReceipts) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	if s.receipt == nil || s.polls <= s.after {
		return nil, ethereum.NotFound
	}
	return s.receipt, nil
}

func (s *stubReceipts) TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	if s.txUnknown {
		return nil, false, ethereum.NotFound
	}
	return types.NewTx(&types.LegacyTx{}), true, nil
}

func (s *stubReceipts) BlockNumber(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// one block per poll
	return s.block + uint64(s.polls), nil
}

var testHash = common.HexToHash("0x9c3f8a53d7de15d6e6b3e1d0b7f2a4c6e8a0b2c4d6e8f0a2b4c6d8e0f2a4b6c8")

func fastWait() *WaitOptions {
	return &WaitOptions{Confirmations: 1, Timeout: time.Second, PollInterval: time.Millisecond}
}

func Test_WaitForTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the receipt verbatim", func(t *testing.T) {
		src := &stubReceipts{after: 2, receipt: &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      testHash,
			BlockNumber: big.NewInt(123),
		}}
		receipt, err := WaitForTransaction(ctx, src, testHash, fastWait())
		require.NoError(t, err)
		assert.Equal(t, testHash, receipt.TxHash)
		assert.Equal(t, int64(123), receipt.BlockNumber.Int64())
	})
	t.Run("Status 0 is a reverted error", func(t *testing.T) {
		src := &stubReceipts{receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(9), GasUsed: 21000}}
		_, err := WaitForTransaction(ctx, src, testHash, fastWait())
		var reverted *errorTypes.TransactionRevertedError
		require.ErrorAs(t, err, &reverted)
		assert.Equal(t, testHash.Hex(), reverted.Hash)
		assert.Equal(t, uint64(9), reverted.BlockNumber)
	})
	t.Run("Unknown transaction without receipt", func(t *testing.T) {
		src := &stubReceipts{txUnknown: true}
		_, err := WaitForTransaction(ctx, src, testHash, fastWait())
		var txErr *errorTypes.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, testHash.Hex(), txErr.Hash)
	})
	t.Run("Timeout carries the hash", func(t *testing.T) {
		src := &stubReceipts{}
		_, err := WaitForTransaction(ctx, src, testHash, &WaitOptions{Timeout: 20 * time.Millisecond, PollInterval: time.Millisecond})
		var timeoutErr *errorTypes.TransactionTimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, testHash.Hex(), timeoutErr.Hash)
	})
	t.Run("Waits for confirmations", func(t *testing.T) {
		src := &stubReceipts{block: 100, receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(103)}}
		opts := fastWait()
		opts.Confirmations = 3
		receipt, err := WaitForTransaction(ctx, src, testHash, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(103), receipt.BlockNumber.Int64())
		// 100+polls must reach 105 for three confirmations
		assert.GreaterOrEqual(t, src.polls, 5)
	})
	t.Run("Parent cancellation is not a timeout", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := WaitForTransaction(cctx, &stubReceipts{}, testHash, fastWait())
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
