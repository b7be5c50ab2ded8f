package ethereum

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type ResponseParserFunc[T any] func(res json.RawMessage) (T, error)

type RequestMethod struct {
	Name    string
	Timeout time.Duration
}

type RequestResponseHandler[T any] struct {
	RequestMethod  *RequestMethod
	ResponseParser ResponseParserFunc[T]
}

func parseHexUint64(res json.RawMessage) (uint64, error) {
	var s string
	if err := json.Unmarshal(res, &s); err != nil {
		return 0, errors.Wrap(err, "expected a hex string result")
	}
	return hexutil.DecodeUint64(s)
}

func parseHexBytes(res json.RawMessage) ([]byte, error) {
	var b hexutil.Bytes
	if err := json.Unmarshal(res, &b); err != nil {
		return nil, errors.Wrap(err, "expected a hex bytes result")
	}
	return b, nil
}

var (
	RPCMethod_BlockNumber = &RequestResponseHandler[uint64]{
		RequestMethod: &RequestMethod{
			Name:    "eth_blockNumber",
			Timeout: time.Second * 5,
		},
		ResponseParser: parseHexUint64,
	}
	RPCMethod_ChainId = &RequestResponseHandler[uint64]{
		RequestMethod: &RequestMethod{
			Name:    "eth_chainId",
			Timeout: time.Second * 5,
		},
		ResponseParser: parseHexUint64,
	}
	RPCMethod_Call = &RequestResponseHandler[[]byte]{
		RequestMethod: &RequestMethod{
			Name:    "eth_call",
			Timeout: time.Second * 10,
		},
		ResponseParser: parseHexBytes,
	}
)

func BlockNumberRequest(id uint) *RPCRequest {
	return &RPCRequest{
		JSONRPC: jsonRPCVersion,
		Method:  RPCMethod_BlockNumber.RequestMethod.Name,
		ID:      id,
	}
}

func ChainIdRequest(id uint) *RPCRequest {
	return &RPCRequest{
		JSONRPC: jsonRPCVersion,
		Method:  RPCMethod_ChainId.RequestMethod.Name,
		ID:      id,
	}
}

type callArgs struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// EthCallRequest builds an eth_call against block, which is a hex number or a tag such as "latest".
func EthCallRequest(to string, data []byte, block string, id uint) *RPCRequest {
	if block == "" {
		block = "latest"
	}
	return &RPCRequest{
		JSONRPC: jsonRPCVersion,
		Method:  RPCMethod_Call.RequestMethod.Name,
		Params:  []any{callArgs{To: to, Data: hexutil.Encode(data)}, block},
		ID:      id,
	}
}
