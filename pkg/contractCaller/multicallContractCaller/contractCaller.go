package multicallContractCaller

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ contractCaller.IContractCaller = (*MulticallContractCaller)(nil)

type multicall3Call struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

type multicall3Result struct {
	Success    bool
	ReturnData []byte
}

// MulticallContractCaller aggregates reads into a single aggregate3 call on Multicall3.
type MulticallContractCaller struct {
	Backend bind.ContractCaller
	Logger  *zap.Logger
	// BlockNumber pins reads to a block; nil reads latest.
	BlockNumber *big.Int

	address common.Address
	abi     *abi.ABI
}

func NewMulticallContractCaller(backend bind.ContractCaller, l *zap.Logger) *MulticallContractCaller {
	return &MulticallContractCaller{
		Backend: backend,
		Logger:  l,
		address: common.HexToAddress(registry.Multicall3Address),
		abi:     contracts.MustGetAbi(registry.Contract_Multicall3),
	}
}

func (cc *MulticallContractCaller) aggregate3(ctx context.Context, calls []*contractCaller.Call) ([]multicall3Result, error) {
	payload := make([]multicall3Call, 0, len(calls))
	for _, c := range calls {
		payload = append(payload, multicall3Call{Target: c.Target, AllowFailure: c.AllowFailure, CallData: c.CallData})
	}
	data, err := cc.abi.Pack("aggregate3", payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode aggregate3")
	}

	raw, err := cc.Backend.CallContract(ctx, ethereum.CallMsg{To: &cc.address, Data: data}, cc.BlockNumber)
	if err != nil {
		cc.Logger.Sugar().Errorw("aggregate3 - failed to call multicall contract",
			zap.Int("calls", len(calls)),
			zap.Error(err),
		)
		return nil, err
	}

	out, err := cc.abi.Unpack("aggregate3", raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode aggregate3 response")
	}
	if len(out) != 1 {
		return nil, errors.Errorf("unexpected aggregate3 output count %d", len(out))
	}
	results := *abi.ConvertType(out[0], new([]multicall3Result)).(*[]multicall3Result)
	if len(results) != len(calls) {
		return nil, errors.Errorf("aggregate3 returned %d results for %d calls", len(results), len(calls))
	}
	return results, nil
}

func (cc *MulticallContractCaller) Multicall(ctx context.Context, calls []*contractCaller.CallWithAbi) ([]*contractCaller.CallResult, error) {
	if len(calls) == 0 {
		return make([]*contractCaller.CallResult, 0), nil
	}
	encoded, err := contractCaller.EncodeCalls(calls)
	if err != nil {
		return nil, err
	}
	results, err := cc.aggregate3(ctx, encoded)
	if err != nil {
		return nil, err
	}

	decoded := make([]*contractCaller.CallResult, len(calls))
	for i, r := range results {
		decoded[i] = contractCaller.DecodeResult(calls[i], r.Success, r.ReturnData)
	}
	return decoded, nil
}

func (cc *MulticallContractCaller) BatchRead(ctx context.Context, calls []*contractCaller.Call) ([]*contractCaller.RawResult, error) {
	if len(calls) == 0 {
		return make([]*contractCaller.RawResult, 0), nil
	}
	results, err := cc.aggregate3(ctx, calls)
	if err != nil {
		return nil, err
	}
	out := make([]*contractCaller.RawResult, len(results))
	for i, r := range results {
		out[i] = &contractCaller.RawResult{Index: i, Success: r.Success, ReturnData: r.ReturnData}
	}
	return out, nil
}
