package transactions

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Backend is everything a submission needs from the provider.
type Backend interface {
	bind.ContractBackend
	ReceiptSource
}

// Transactor is a signing identity able to produce transactor options.
type Transactor interface {
	Address() common.Address
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

type SendOptions struct {
	GasBufferPercent int
	Overrides        *TransactionOptions
	Wait             *WaitOptions
}

type Request struct {
	To     common.Address
	Abi    *abi.ABI
	Method string
	Args   []any
	Value  *big.Int
}

type Outcome struct {
	Hash    common.Hash
	Receipt *types.Receipt
	Options *TransactionOptions
}

// SendTransaction estimates gas, builds fee options, signs, submits and waits for req.
func SendTransaction(ctx context.Context, backend Backend, signer Transactor, req *Request, opts *SendOptions, l *zap.Logger) (*Outcome, error) {
	if opts == nil {
		opts = &SendOptions{GasBufferPercent: DefaultGasBufferPercent}
	}
	data, err := req.Abi.Pack(req.Method, req.Args...)
	if err != nil {
		return nil, errorTypes.NewValidationError(req.Method, "Failed to encode %s: %v", req.Method, err)
	}

	value := req.Value
	if opts.Overrides != nil && opts.Overrides.Value != nil {
		value = opts.Overrides.Value
	}

	gasLimit := uint64(0)
	if opts.Overrides != nil {
		gasLimit = opts.Overrides.GasLimit
	}
	if gasLimit == 0 {
		gasLimit, err = EstimateCallGas(ctx, backend, ethereum.CallMsg{
			From:  signer.Address(),
			To:    &req.To,
			Value: value,
			Data:  data,
		}, opts.GasBufferPercent)
		if err != nil {
			l.Sugar().Errorw("SendTransaction - gas estimation failed",
				zap.String("method", req.Method),
				zap.Error(err),
			)
			return nil, err
		}
	}

	txOpts, err := BuildTransactionOptions(ctx, backend, gasLimit, opts.Overrides)
	if err != nil {
		return nil, err
	}
	if txOpts.Value == nil {
		txOpts.Value = value
	}

	auth, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	txOpts.Apply(auth)

	contract := bind.NewBoundContract(req.To, *req.Abi, backend, backend, backend)
	tx, err := contract.RawTransact(auth, data)
	if err != nil {
		l.Sugar().Errorw("SendTransaction - failed to submit transaction",
			zap.String("method", req.Method),
			zap.Error(err),
		)
		return nil, &errorTypes.TransactionError{Message: ParseTransactionError(err), Err: err}
	}
	l.Sugar().Infow("Submitted transaction",
		zap.String("method", req.Method),
		zap.String("hash", tx.Hash().Hex()),
		zap.Uint64("gasLimit", tx.Gas()),
		zap.String("gasFeeCap", FormatGwei(tx.GasFeeCap())),
		zap.String("gasTipCap", FormatGwei(tx.GasTipCap())),
	)

	receipt, err := WaitForTransaction(ctx, backend, tx.Hash(), opts.Wait)
	if err != nil {
		return &Outcome{Hash: tx.Hash(), Options: txOpts}, err
	}
	return &Outcome{Hash: tx.Hash(), Receipt: receipt, Options: txOpts}, nil
}
