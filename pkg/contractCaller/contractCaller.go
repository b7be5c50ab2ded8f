package contractCaller

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Call is a pre-encoded contract read.
type Call struct {
	Target       common.Address
	CallData     []byte
	AllowFailure bool
}

// CallWithAbi is a contract read described by its ABI method and arguments.
type CallWithAbi struct {
	Target common.Address
	Abi    *abi.ABI
	Method string
	Args   []any
	// AllowFailure defaults to true when nil.
	AllowFailure *bool
}

type CallResult struct {
	Success      bool
	ReturnData   []byte
	DecodedValue any
	Error        string
	// DecodeErr is set when the call succeeded but its return data did not unpack.
	DecodeErr *errorTypes.DecodeError
}

// RawResult is the undecoded outcome of a pre-encoded Call.
type RawResult struct {
	Index      int
	Success    bool
	ReturnData []byte
}

type IContractCaller interface {
	// Multicall executes calls as one logical read. Results are positional.
	Multicall(ctx context.Context, calls []*CallWithAbi) ([]*CallResult, error)
	// BatchRead executes pre-encoded calls, tolerating individual failures.
	BatchRead(ctx context.Context, calls []*Call) ([]*RawResult, error)
}

const (
	DefaultChunkSize   = 50
	DefaultConcurrency = 5
)

type BatchOptions struct {
	ChunkSize   int
	Concurrency int
}

// EncodeCalls packs every call. Any encoding failure fails the whole set before I/O.
func EncodeCalls(calls []*CallWithAbi) ([]*Call, error) {
	encoded := make([]*Call, 0, len(calls))
	for i, c := range calls {
		if c.Abi == nil {
			return nil, errorTypes.NewValidationError(fmt.Sprintf("calls[%d]", i), "Call %d has no ABI", i)
		}
		data, err := c.Abi.Pack(c.Method, c.Args...)
		if err != nil {
			return nil, errorTypes.NewValidationError(fmt.Sprintf("calls[%d]", i), "Failed to encode %s: %v", c.Method, err)
		}
		encoded = append(encoded, &Call{
			Target:       c.Target,
			CallData:     data,
			AllowFailure: c.AllowFailure == nil || *c.AllowFailure,
		})
	}
	return encoded, nil
}

// DecodeResult turns a raw sub-result into a CallResult. A single output is unwrapped;
// multiple outputs stay an ordered slice. Decode failures are recorded on the result.
func DecodeResult(call *CallWithAbi, success bool, returnData []byte) *CallResult {
	res := &CallResult{Success: success, ReturnData: returnData}
	if !success {
		res.Error = "Call reverted"
		return res
	}
	if len(returnData) == 0 {
		return res
	}
	values, err := call.Abi.Unpack(call.Method, returnData)
	if err != nil {
		res.DecodeErr = &errorTypes.DecodeError{Method: call.Method, Err: err}
		res.Error = res.DecodeErr.Error()
		return res
	}
	if len(values) == 1 {
		res.DecodedValue = values[0]
	} else {
		res.DecodedValue = values
	}
	return res
}

// BatchedMulticall splits calls into chunks, runs up to Concurrency chunks at a time and
// concatenates results in input order.
func BatchedMulticall(ctx context.Context, caller IContractCaller, calls []*CallWithAbi, opts *BatchOptions) ([]*CallResult, error) {
	chunkSize := DefaultChunkSize
	concurrency := DefaultConcurrency
	if opts != nil {
		if opts.ChunkSize > 0 {
			chunkSize = opts.ChunkSize
		}
		if opts.Concurrency > 0 {
			concurrency = opts.Concurrency
		}
	}
	if len(calls) <= chunkSize {
		return caller.Multicall(ctx, calls)
	}

	if _, err := EncodeCalls(calls); err != nil {
		return nil, err
	}

	chunks := lo.Chunk(calls, chunkSize)
	chunkResults := make([][]*CallResult, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			res, err := caller.Multicall(gctx, chunk)
			if err != nil {
				return err
			}
			chunkResults[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(chunkResults), nil
}

// BoolPtr is a helper for CallWithAbi.AllowFailure.
func BoolPtr(b bool) *bool {
	return &b
}
