package transactions

import (
	"context"
	"errors"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	DefaultConfirmations       = 1
	DefaultConfirmationTimeout = 300 * time.Second
	defaultPollInterval        = 2 * time.Second
)

type ReceiptSource interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

type WaitOptions struct {
	Confirmations uint64
	Timeout       time.Duration
	PollInterval  time.Duration
}

func DefaultWaitOptions() *WaitOptions {
	return &WaitOptions{
		Confirmations: DefaultConfirmations,
		Timeout:       DefaultConfirmationTimeout,
		PollInterval:  defaultPollInterval,
	}
}

// WaitForTransaction polls until txHash is mined with the requested confirmations.
//
// The outcome is one of: the receipt; TransactionRevertedError when status is 0;
// TransactionError when neither a receipt nor the transaction itself is known to the node;
// TransactionTimeoutError when the timeout elapses first.
func WaitForTransaction(ctx context.Context, src ReceiptSource, txHash common.Hash, opts *WaitOptions) (*types.Receipt, error) {
	defaults := DefaultWaitOptions()
	if opts == nil {
		opts = defaults
	}
	confirmations := opts.Confirmations
	if confirmations == 0 {
		confirmations = defaults.Confirmations
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaults.Timeout
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaults.PollInterval
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	timedOut := func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &errorTypes.TransactionTimeoutError{Hash: txHash.Hex(), Timeout: timeout}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		done, receipt, err := checkReceipt(waitCtx, src, txHash, confirmations)
		if waitCtx.Err() != nil {
			return nil, timedOut()
		}
		if err != nil {
			return nil, err
		}
		if done {
			return receipt, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, timedOut()
		case <-ticker.C:
		}
	}
}

func checkReceipt(ctx context.Context, src ReceiptSource, txHash common.Hash, confirmations uint64) (bool, *types.Receipt, error) {
	receipt, err := src.TransactionReceipt(ctx, txHash)
	if err != nil {
		if !errors.Is(err, ethereum.NotFound) {
			return false, nil, err
		}
		_, _, txErr := src.TransactionByHash(ctx, txHash)
		if errors.Is(txErr, ethereum.NotFound) {
			return false, nil, &errorTypes.TransactionError{
				Hash:    txHash.Hex(),
				Message: "Transaction failed - no receipt returned",
				Err:     txErr,
			}
		}
		// pending or transiently unavailable
		return false, nil, nil
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return false, nil, &errorTypes.TransactionRevertedError{
			Hash:        txHash.Hex(),
			BlockNumber: receiptBlock(receipt),
			GasUsed:     receipt.GasUsed,
		}
	}

	if confirmations > 1 {
		current, err := src.BlockNumber(ctx)
		if err != nil {
			return false, nil, err
		}
		mined := receiptBlock(receipt)
		if current < mined || current-mined+1 < confirmations {
			return false, nil, nil
		}
	}
	return true, receipt, nil
}

func receiptBlock(r *types.Receipt) uint64 {
	if r.BlockNumber == nil {
		return 0
	}
	return r.BlockNumber.Uint64()
}
