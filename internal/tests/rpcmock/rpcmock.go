// Package rpcmock serves canned JSON-RPC responses over an httpmock transport.
package rpcmock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jarcoal/httpmock"
)

type RpcError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type Handler func(params []json.RawMessage) (any, *RpcError)

type request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RpcError       `json:"error,omitempty"`
}

type RpcMock struct {
	mu       sync.Mutex
	handlers map[string]Handler
	calls    map[string]int
	// statusOverride holds HTTP statuses returned, in order, before any request is served.
	statusOverride []int
}

func New() *RpcMock {
	return &RpcMock{
		handlers: make(map[string]Handler),
		calls:    make(map[string]int),
	}
}

func (m *RpcMock) On(method string, h Handler) *RpcMock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method] = h
	return m
}

// OnResult registers a fixed result for method.
func (m *RpcMock) OnResult(method string, result any) *RpcMock {
	return m.On(method, func(params []json.RawMessage) (any, *RpcError) {
		return result, nil
	})
}

// FailNext makes the next len(statuses) HTTP requests fail with the given status codes.
func (m *RpcMock) FailNext(statuses ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusOverride = append(m.statusOverride, statuses...)
}

func (m *RpcMock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *RpcMock) handle(req request) response {
	m.mu.Lock()
	m.calls[req.Method]++
	h, ok := m.handlers[req.Method]
	m.mu.Unlock()

	res := response{JSONRPC: "2.0", ID: req.ID}
	if !ok {
		res.Error = &RpcError{Code: -32601, Message: fmt.Sprintf("the method %s does not exist/is not available", req.Method)}
		return res
	}
	result, rpcErr := h(req.Params)
	if rpcErr != nil {
		res.Error = rpcErr
		return res
	}
	raw, err := json.Marshal(result)
	if err != nil {
		res.Error = &RpcError{Code: -32603, Message: err.Error()}
		return res
	}
	res.Result = raw
	return res
}

func (m *RpcMock) Responder() httpmock.Responder {
	return func(r *http.Request) (*http.Response, error) {
		m.mu.Lock()
		if len(m.statusOverride) > 0 {
			status := m.statusOverride[0]
			m.statusOverride = m.statusOverride[1:]
			m.mu.Unlock()
			return httpmock.NewStringResponse(status, http.StatusText(status)), nil
		}
		m.mu.Unlock()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.TrimSpace(body)
		if bytes.HasPrefix(body, []byte("[")) {
			var reqs []request
			if err := json.Unmarshal(body, &reqs); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, err.Error()), nil
			}
			out := make([]response, 0, len(reqs))
			for _, req := range reqs {
				out = append(out, m.handle(req))
			}
			return httpmock.NewJsonResponse(http.StatusOK, out)
		}
		var req request
		if err := json.Unmarshal(body, &req); err != nil {
			return httpmock.NewStringResponse(http.StatusBadRequest, err.Error()), nil
		}
		return httpmock.NewJsonResponse(http.StatusOK, m.handle(req))
	}
}

// HttpClient returns a client whose transport routes POSTs to url into this mock.
func (m *RpcMock) HttpClient(url string) *http.Client {
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder(http.MethodPost, url, m.Responder())
	return &http.Client{Transport: mt}
}

func HexUint(v uint64) string {
	return hexutil.EncodeUint64(v)
}

func HexBig(v *big.Int) string {
	return hexutil.EncodeBig(v)
}

func HexBytes(b []byte) string {
	return hexutil.Encode(b)
}

// DecodeParam unmarshals the i-th positional parameter into dst.
func DecodeParam(params []json.RawMessage, i int, dst any) error {
	if i >= len(params) {
		return fmt.Errorf("missing param %d", i)
	}
	return json.Unmarshal(params[i], dst)
}

// Header returns a minimal eth_getBlockByNumber payload. A nil baseFee yields a pre-London header.
func Header(number uint64, baseFee *big.Int) map[string]any {
	h := map[string]any{
		"parentHash":       "0x0000000000000000000000000000000000000000000000000000000000000000",
		"sha3Uncles":       "0x1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347",
		"miner":            "0x0000000000000000000000000000000000000000",
		"stateRoot":        "0x0000000000000000000000000000000000000000000000000000000000000000",
		"transactionsRoot": "0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
		"receiptsRoot":     "0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
		"logsBloom":        HexBytes(make([]byte, 256)),
		"difficulty":       "0x0",
		"number":           HexUint(number),
		"gasLimit":         HexUint(30_000_000),
		"gasUsed":          "0x0",
		"timestamp":        HexUint(1_700_000_000 + number*12),
		"extraData":        "0x",
		"mixHash":          "0x0000000000000000000000000000000000000000000000000000000000000000",
		"nonce":            "0x0000000000000000",
		"hash":             "0x0000000000000000000000000000000000000000000000000000000000000000",
	}
	if baseFee != nil {
		h["baseFeePerGas"] = HexBig(baseFee)
	}
	return h
}

// Receipt returns an eth_getTransactionReceipt payload for txHash mined in blockNumber.
func Receipt(txHash string, blockNumber uint64, status uint64) map[string]any {
	return map[string]any{
		"transactionHash":   txHash,
		"transactionIndex":  "0x0",
		"blockHash":         "0x00000000000000000000000000000000000000000000000000000000000000aa",
		"blockNumber":       HexUint(blockNumber),
		"cumulativeGasUsed": HexUint(21_000),
		"gasUsed":           HexUint(21_000),
		"effectiveGasPrice": HexUint(1_000_000_000),
		"logsBloom":         HexBytes(make([]byte, 256)),
		"logs":              []any{},
		"status":            HexUint(status),
		"type":              "0x2",
	}
}
