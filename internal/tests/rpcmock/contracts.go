package rpcmock

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// MethodHandler receives decoded inputs and returns output values, or an error to revert with.
type MethodHandler func(args []any) ([]any, error)

type methodEntry struct {
	method  abi.Method
	handler MethodHandler
}

// ContractMock answers eth_call for registered (contract, method) pairs, including
// calls aggregated through Multicall3.
type ContractMock struct {
	mu       sync.Mutex
	handlers map[common.Address]map[string]*methodEntry
	calls    map[string]int
	multi    *abi.ABI
}

type callArgs struct {
	To    *common.Address `json:"to"`
	Data  *hexutil.Bytes  `json:"data"`
	Input *hexutil.Bytes  `json:"input"`
}

func NewContractMock(m *RpcMock) *ContractMock {
	cm := &ContractMock{
		handlers: make(map[common.Address]map[string]*methodEntry),
		calls:    make(map[string]int),
		multi:    contracts.MustGetAbi(registry.Contract_Multicall3),
	}
	m.On("eth_call", cm.handleEthCall)
	return cm
}

func (cm *ContractMock) Handle(target common.Address, a *abi.ABI, method string, fn MethodHandler) *ContractMock {
	m, ok := a.Methods[method]
	if !ok {
		panic(fmt.Sprintf("unknown method %s", method))
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.handlers[target] == nil {
		cm.handlers[target] = make(map[string]*methodEntry)
	}
	cm.handlers[target][string(m.ID)] = &methodEntry{method: m, handler: fn}
	return cm
}

func (cm *ContractMock) Returns(target common.Address, a *abi.ABI, method string, values ...any) *ContractMock {
	return cm.Handle(target, a, method, func(args []any) ([]any, error) {
		return values, nil
	})
}

func (cm *ContractMock) Reverts(target common.Address, a *abi.ABI, method string, reason string) *ContractMock {
	return cm.Handle(target, a, method, func(args []any) ([]any, error) {
		return nil, fmt.Errorf("%s", reason)
	})
}

// Calls counts invocations of method, whether direct or aggregated.
func (cm *ContractMock) Calls(method string) int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.calls[method]
}

// EncodeRevert builds Error(string) revert data.
func EncodeRevert(reason string) []byte {
	strType, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: strType}}.Pack(reason)
	return append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...)
}

// dispatch executes one call; ok is false on revert, with revert data in out.
func (cm *ContractMock) dispatch(target common.Address, data []byte) (out []byte, ok bool, reason string) {
	if len(data) < 4 {
		return nil, false, "no selector"
	}
	cm.mu.Lock()
	entry := cm.handlers[target][string(data[:4])]
	if entry != nil {
		cm.calls[entry.method.Name]++
	}
	cm.mu.Unlock()
	if entry == nil {
		return nil, false, fmt.Sprintf("no handler for %s on %s", hexutil.Encode(data[:4]), target.Hex())
	}

	args, err := entry.method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, false, err.Error()
	}
	values, err := entry.handler(args)
	if err != nil {
		return EncodeRevert(err.Error()), false, err.Error()
	}
	packed, err := entry.method.Outputs.Pack(values...)
	if err != nil {
		panic(fmt.Sprintf("bad outputs for %s: %v", entry.method.Name, err))
	}
	return packed, true, ""
}

type aggregateCall struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

type aggregateResult struct {
	Success    bool
	ReturnData []byte
}

func (cm *ContractMock) aggregate3(data []byte) ([]byte, *RpcError) {
	method := cm.multi.Methods["aggregate3"]
	in, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, &RpcError{Code: -32602, Message: err.Error()}
	}
	calls := *abi.ConvertType(in[0], new([]aggregateCall)).(*[]aggregateCall)
	results := make([]aggregateResult, 0, len(calls))
	for _, c := range calls {
		out, ok, reason := cm.dispatch(c.Target, c.CallData)
		if !ok && !c.AllowFailure {
			return nil, &RpcError{Code: 3, Message: "execution reverted: Multicall3: call failed", Data: HexBytes(EncodeRevert(reason))}
		}
		results = append(results, aggregateResult{Success: ok, ReturnData: out})
	}
	packed, err := method.Outputs.Pack(results)
	if err != nil {
		return nil, &RpcError{Code: -32603, Message: err.Error()}
	}
	return packed, nil
}

func (cm *ContractMock) handleEthCall(params []json.RawMessage) (any, *RpcError) {
	var args callArgs
	if err := DecodeParam(params, 0, &args); err != nil || args.To == nil {
		return nil, &RpcError{Code: -32602, Message: "invalid call arguments"}
	}
	var data []byte
	if args.Input != nil {
		data = *args.Input
	} else if args.Data != nil {
		data = *args.Data
	}

	if strings.EqualFold(args.To.Hex(), registry.Multicall3Address) && len(data) >= 4 &&
		string(data[:4]) == string(cm.multi.Methods["aggregate3"].ID) {
		out, rpcErr := cm.aggregate3(data)
		if rpcErr != nil {
			return nil, rpcErr
		}
		return HexBytes(out), nil
	}

	out, ok, reason := cm.dispatch(*args.To, data)
	if !ok {
		return nil, &RpcError{Code: 3, Message: "execution reverted: " + reason, Data: HexBytes(out)}
	}
	return HexBytes(out), nil
}
