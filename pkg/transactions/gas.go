package transactions

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const DefaultGasBufferPercent = 20

// used when the node cannot suggest a priority fee
var defaultPriorityFee = numbers.GweiToWei(big.NewInt(1))

type GasEstimator interface {
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
}

// FeeSource is the read side of a provider needed to compute fee data.
type FeeSource interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

type EstimateOptions struct {
	BufferPercent int
	Value         *big.Int
}

// ApplyGasBuffer returns est + est*bufferPercent/100 using integer arithmetic.
func ApplyGasBuffer(est uint64, bufferPercent int) uint64 {
	if bufferPercent <= 0 {
		return est
	}
	buffer := new(big.Int).Mul(new(big.Int).SetUint64(est), big.NewInt(int64(bufferPercent)))
	buffer.Div(buffer, big.NewInt(100))
	return est + buffer.Uint64()
}

// EstimateGas estimates a contract method call from `from` and adds the safety buffer.
func EstimateGas(
	ctx context.Context,
	estimator GasEstimator,
	from common.Address,
	to common.Address,
	contractAbi *abi.ABI,
	method string,
	args []any,
	opts *EstimateOptions,
) (uint64, error) {
	if opts == nil {
		opts = &EstimateOptions{BufferPercent: DefaultGasBufferPercent}
	}
	data, err := contractAbi.Pack(method, args...)
	if err != nil {
		return 0, errorTypes.NewValidationError(method, "Failed to encode %s: %v", method, err)
	}
	return EstimateCallGas(ctx, estimator, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: opts.Value,
		Data:  data,
	}, opts.BufferPercent)
}

// EstimateCallGas estimates a pre-encoded call and adds bufferPercent.
func EstimateCallGas(ctx context.Context, estimator GasEstimator, msg ethereum.CallMsg, bufferPercent int) (uint64, error) {
	est, err := estimator.EstimateGas(ctx, msg)
	if err != nil {
		return 0, &errorTypes.GasEstimationError{Reason: RevertReason(err), Err: err}
	}
	return ApplyGasBuffer(est, bufferPercent), nil
}

// FeeData mirrors a provider's fee suggestion. Nil fields are unsupported by the network.
type FeeData struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasPrice             *big.Int
}

// GetFeeData reports EIP-1559 fees when the latest header carries a base fee:
// tip from eth_maxPriorityFeePerGas (1 gwei fallback) and maxFee = 2*baseFee + tip.
func GetFeeData(ctx context.Context, src FeeSource) (*FeeData, error) {
	head, err := src.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	fd := &FeeData{}
	if gp, err := src.SuggestGasPrice(ctx); err == nil {
		fd.GasPrice = gp
	}
	if head.BaseFee != nil {
		tip, err := src.SuggestGasTipCap(ctx)
		if err != nil || tip == nil {
			tip = new(big.Int).Set(defaultPriorityFee)
		}
		fd.MaxPriorityFeePerGas = tip
		fd.MaxFeePerGas = new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)
	}
	return fd, nil
}

type GasPrices struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasPrice             *big.Int
}

// GetGasPrices returns the fee data with missing fields set to zero.
func GetGasPrices(ctx context.Context, src FeeSource) (*GasPrices, error) {
	fd, err := GetFeeData(ctx, src)
	if err != nil {
		return nil, err
	}
	return &GasPrices{
		MaxFeePerGas:         orZero(fd.MaxFeePerGas),
		MaxPriorityFeePerGas: orZero(fd.MaxPriorityFeePerGas),
		GasPrice:             orZero(fd.GasPrice),
	}, nil
}

func SupportsEIP1559(ctx context.Context, src FeeSource) (bool, error) {
	fd, err := GetFeeData(ctx, src)
	if err != nil {
		return false, err
	}
	return fd.MaxFeePerGas != nil, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// TransactionOptions is the gas plan and overrides for one submission.
type TransactionOptions struct {
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasPrice             *big.Int
	Nonce                *uint64
	Value                *big.Int
}

// BuildTransactionOptions merges overrides over gasLimit. When the caller set neither gasPrice nor
// maxFeePerGas, network fees are filled in: EIP-1559 fields where supported, legacy gasPrice otherwise.
func BuildTransactionOptions(ctx context.Context, src FeeSource, gasLimit uint64, overrides *TransactionOptions) (*TransactionOptions, error) {
	opts := &TransactionOptions{GasLimit: gasLimit}
	if overrides != nil {
		o := *overrides
		opts = &o
		if opts.GasLimit == 0 {
			opts.GasLimit = gasLimit
		}
	}
	if opts.GasPrice != nil || opts.MaxFeePerGas != nil {
		return opts, nil
	}

	fd, err := GetFeeData(ctx, src)
	if err != nil {
		return nil, err
	}
	if fd.MaxFeePerGas != nil {
		opts.MaxFeePerGas = fd.MaxFeePerGas
		opts.MaxPriorityFeePerGas = fd.MaxPriorityFeePerGas
	} else {
		opts.GasPrice = orZero(fd.GasPrice)
	}
	return opts, nil
}

// Apply copies the plan onto go-ethereum transactor options.
func (o *TransactionOptions) Apply(opts *bind.TransactOpts) {
	opts.GasLimit = o.GasLimit
	if o.GasPrice != nil {
		opts.GasPrice = o.GasPrice
	} else {
		opts.GasFeeCap = o.MaxFeePerGas
		opts.GasTipCap = o.MaxPriorityFeePerGas
		if opts.GasTipCap == nil && opts.GasFeeCap != nil {
			opts.GasTipCap = new(big.Int).Set(defaultPriorityFee)
		}
	}
	if o.Nonce != nil {
		opts.Nonce = new(big.Int).SetUint64(*o.Nonce)
	}
	if o.Value != nil {
		opts.Value = o.Value
	}
}

// FormatGwei renders a fee per gas for logs, e.g. "12.5 gwei".
func FormatGwei(v *big.Int) string {
	return numbers.FormatBigInt(orZero(v), numbers.GweiDecimals, 2, "gwei")
}

// FormatGasCost renders gasUsed*gasPrice in ether.
func FormatGasCost(gasUsed uint64, gasPrice *big.Int) string {
	cost := new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), orZero(gasPrice))
	return numbers.FormatEther(cost)
}
