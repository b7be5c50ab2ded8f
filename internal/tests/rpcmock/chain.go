package rpcmock

import (
	"encoding/json"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	ChainHead    = 100
	ChainMinedAt = 101
)

// Chain serves a London chain at block ChainHead that mines every submitted transaction
// in block ChainMinedAt with the configured status.
type Chain struct {
	mu     sync.Mutex
	sent   []*types.Transaction
	status uint64
}

func Gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000))
}

// NewChain registers fee, nonce, submission and receipt handlers on m.
// Estimates are 50000 gas, base fee 10 gwei, tip 2 gwei and the pending nonce 5.
func NewChain(m *RpcMock, status uint64) *Chain {
	c := &Chain{status: status}
	m.OnResult("eth_estimateGas", HexUint(50_000))
	m.OnResult("eth_getBlockByNumber", Header(ChainHead, Gwei(10)))
	m.OnResult("eth_gasPrice", HexBig(Gwei(12)))
	m.OnResult("eth_maxPriorityFeePerGas", HexBig(Gwei(2)))
	m.OnResult("eth_getTransactionCount", HexUint(5))
	m.OnResult("eth_blockNumber", HexUint(ChainMinedAt))
	m.OnResult("eth_getBalance", HexBig(new(big.Int).Mul(Gwei(1_000_000_000), big.NewInt(100))))
	m.On("eth_sendRawTransaction", func(params []json.RawMessage) (any, *RpcError) {
		var raw hexutil.Bytes
		if err := DecodeParam(params, 0, &raw); err != nil {
			return nil, &RpcError{Code: -32602, Message: err.Error()}
		}
		tx := new(types.Transaction)
		if err := tx.UnmarshalBinary(raw); err != nil {
			return nil, &RpcError{Code: -32602, Message: err.Error()}
		}
		c.mu.Lock()
		c.sent = append(c.sent, tx)
		c.mu.Unlock()
		return tx.Hash().Hex(), nil
	})
	m.On("eth_getTransactionReceipt", func(params []json.RawMessage) (any, *RpcError) {
		var hash string
		_ = DecodeParam(params, 0, &hash)
		c.mu.Lock()
		status := c.status
		c.mu.Unlock()
		return Receipt(hash, ChainMinedAt, status), nil
	})
	return c
}

func (c *Chain) SetStatus(status uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *Chain) Last() *types.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return nil
	}
	return c.sent[len(c.sent)-1]
}

func (c *Chain) Transactions() []*types.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*types.Transaction(nil), c.sent...)
}
