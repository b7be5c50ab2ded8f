package sequentialContractCaller

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ contractCaller.IContractCaller = (*SequentialContractCaller)(nil)

// SequentialContractCaller issues one eth_call per call, for chains without Multicall3.
// The calls travel through the client's JSON-RPC batching and keep their input order.
type SequentialContractCaller struct {
	EthereumClient *ethereum.Client
	Logger         *zap.Logger
	// Block is a hex block number or tag; empty means latest.
	Block string
}

func NewSequentialContractCaller(ec *ethereum.Client, l *zap.Logger) *SequentialContractCaller {
	return &SequentialContractCaller{
		EthereumClient: ec,
		Logger:         l,
	}
}

var executionRevertedRegex = regexp.MustCompile(`execution reverted`)

func isExecutionRevertedError(msg string) bool {
	return executionRevertedRegex.MatchString(msg)
}

// call runs every call and reports (success, returnData) per call. A reverted call that does not
// allow failure fails the whole set, matching aggregate3.
func (cc *SequentialContractCaller) call(ctx context.Context, calls []*contractCaller.Call) ([]*contractCaller.RawResult, error) {
	requests := make([]*ethereum.RPCRequest, 0, len(calls))
	for i, c := range calls {
		requests = append(requests, ethereum.EthCallRequest(c.Target.Hex(), c.CallData, cc.Block, uint(i)))
	}
	responses, err := cc.EthereumClient.BatchCall(ctx, requests)
	if err != nil {
		cc.Logger.Sugar().Errorw("SequentialContractCaller - failed to batch eth_call", zap.Error(err))
		return nil, err
	}

	results := make([]*contractCaller.RawResult, len(calls))
	for i, res := range responses {
		out := &contractCaller.RawResult{Index: i}
		if res.Error != nil {
			if !isExecutionRevertedError(res.Error.Message) {
				return nil, errors.Wrapf(res.Error, "eth_call %d failed", i)
			}
			if !calls[i].AllowFailure {
				return nil, errors.Errorf("call %d to %s reverted: %s", i, calls[i].Target.Hex(), res.Error.Message)
			}
			out.ReturnData = revertData(res.Error)
			results[i] = out
			continue
		}
		data, err := ethereum.RPCMethod_Call.ResponseParser(res.Result)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse eth_call %d result", i)
		}
		out.Success = true
		out.ReturnData = data
		results[i] = out
	}
	return results, nil
}

func revertData(e *ethereum.RPCError) []byte {
	if len(e.Data) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(e.Data, &s); err != nil {
		return nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil
	}
	return b
}

func (cc *SequentialContractCaller) Multicall(ctx context.Context, calls []*contractCaller.CallWithAbi) ([]*contractCaller.CallResult, error) {
	if len(calls) == 0 {
		return make([]*contractCaller.CallResult, 0), nil
	}
	encoded, err := contractCaller.EncodeCalls(calls)
	if err != nil {
		return nil, err
	}
	raw, err := cc.call(ctx, encoded)
	if err != nil {
		return nil, err
	}
	out := make([]*contractCaller.CallResult, len(calls))
	for i, r := range raw {
		out[i] = contractCaller.DecodeResult(calls[i], r.Success, r.ReturnData)
	}
	return out, nil
}

func (cc *SequentialContractCaller) BatchRead(ctx context.Context, calls []*contractCaller.Call) ([]*contractCaller.RawResult, error) {
	if len(calls) == 0 {
		return make([]*contractCaller.RawResult, 0), nil
	}
	return cc.call(ctx, calls)
}
