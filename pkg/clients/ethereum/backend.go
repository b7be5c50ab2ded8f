package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var _ bind.ContractBackend = (*Client)(nil)

// ChainID returns the pinned chain id without touching the endpoint.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(c.clientConfig.ChainId), nil
}

// RemoteChainID asks the endpoint for its chain id.
func (c *Client) RemoteChainID(ctx context.Context) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, "eth_chainId", func(ctx context.Context) error {
		var err error
		res, err = c.eth.ChainID(ctx)
		return err
	})
	return res, err
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var res uint64
	err := c.do(ctx, "eth_blockNumber", func(ctx context.Context) error {
		var err error
		res, err = c.eth.BlockNumber(ctx)
		return err
	})
	return res, err
}

func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var res *types.Header
	err := c.do(ctx, "eth_getBlockByNumber", func(ctx context.Context) error {
		var err error
		res, err = c.eth.HeaderByNumber(ctx, number)
		return err
	})
	return res, err
}

func (c *Client) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	var res []byte
	err := c.do(ctx, "eth_getCode", func(ctx context.Context) error {
		var err error
		res, err = c.eth.CodeAt(ctx, contract, blockNumber)
		return err
	})
	return res, err
}

func (c *Client) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	var res []byte
	err := c.do(ctx, "eth_getCode", func(ctx context.Context) error {
		var err error
		res, err = c.eth.PendingCodeAt(ctx, account)
		return err
	})
	return res, err
}

func (c *Client) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var res []byte
	err := c.do(ctx, "eth_call", func(ctx context.Context) error {
		var err error
		res, err = c.eth.CallContract(ctx, call, blockNumber)
		return err
	})
	return res, err
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	var res uint64
	err := c.do(ctx, "eth_getTransactionCount", func(ctx context.Context) error {
		var err error
		res, err = c.eth.PendingNonceAt(ctx, account)
		return err
	})
	return res, err
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, "eth_getBalance", func(ctx context.Context) error {
		var err error
		res, err = c.eth.BalanceAt(ctx, account, blockNumber)
		return err
	})
	return res, err
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, "eth_gasPrice", func(ctx context.Context) error {
		var err error
		res, err = c.eth.SuggestGasPrice(ctx)
		return err
	})
	return res, err
}

func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	var res *big.Int
	err := c.do(ctx, "eth_maxPriorityFeePerGas", func(ctx context.Context) error {
		var err error
		res, err = c.eth.SuggestGasTipCap(ctx)
		return err
	})
	return res, err
}

func (c *Client) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	var res uint64
	err := c.do(ctx, "eth_estimateGas", func(ctx context.Context) error {
		var err error
		res, err = c.eth.EstimateGas(ctx, call)
		return err
	})
	return res, err
}

// SendTransaction is not retried: a resubmission after a timeout could race the original.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.eth.SendTransaction(ctx, tx)
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var res *types.Receipt
	err := c.do(ctx, "eth_getTransactionReceipt", func(ctx context.Context) error {
		var err error
		res, err = c.eth.TransactionReceipt(ctx, txHash)
		return err
	})
	return res, err
}

func (c *Client) TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	var (
		tx      *types.Transaction
		pending bool
	)
	err := c.do(ctx, "eth_getTransactionByHash", func(ctx context.Context) error {
		var err error
		tx, pending, err = c.eth.TransactionByHash(ctx, txHash)
		return err
	})
	return tx, pending, err
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	var res []types.Log
	err := c.do(ctx, "eth_getLogs", func(ctx context.Context) error {
		var err error
		res, err = c.eth.FilterLogs(ctx, q)
		return err
	})
	return res, err
}

func (c *Client) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.eth.SubscribeFilterLogs(ctx, q, ch)
}
