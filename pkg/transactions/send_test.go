package transactions

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/internal/tests/rpcmock"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/signer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// newChainMock serves a London chain at block 100 that mines every submitted transaction with status.
func newChainMock(status uint64) (*rpcmock.RpcMock, *rpcmock.Chain) {
	mock := rpcmock.New()
	return mock, rpcmock.NewChain(mock, status)
}

func Test_SendTransaction(t *testing.T) {
	ctx := context.Background()
	erc20 := contracts.MustGetAbi(contracts.Contract_ERC20)
	token := common.HexToAddress("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84")
	spender := common.HexToAddress("0x858646372CC42E1A627fcE94aa7A7033e7CF075A")
	wait := &WaitOptions{Confirmations: 1, Timeout: time.Second, PollInterval: time.Millisecond}

	t.Run("Estimates, signs, submits and waits", func(t *testing.T) {
		mock, sent := newChainMock(1)
		client := tests.GetMockEthereumClient(t, mock, "holesky")
		s, err := signer.CreateSigner(ctx, &signer.SigningCredential{PrivateKey: testPrivateKey}, client)
		require.NoError(t, err)

		outcome, err := SendTransaction(ctx, client, s, &Request{
			To:     token,
			Abi:    erc20,
			Method: "approve",
			Args:   []any{spender, big.NewInt(1000)},
		}, &SendOptions{GasBufferPercent: 20, Wait: wait}, tests.GetTestLogger())
		require.NoError(t, err)

		tx := sent.Last()
		require.NotNil(t, tx)
		assert.Equal(t, tx.Hash(), outcome.Hash)
		assert.Equal(t, tx.Hash(), outcome.Receipt.TxHash)
		assert.Equal(t, int64(101), outcome.Receipt.BlockNumber.Int64())

		assert.Equal(t, uint64(60_000), tx.Gas())
		assert.Equal(t, uint64(5), tx.Nonce())
		assert.Equal(t, gwei(22).String(), tx.GasFeeCap().String())
		assert.Equal(t, gwei(2).String(), tx.GasTipCap().String())
		assert.Equal(t, int64(17000), tx.ChainId().Int64())
		assert.Equal(t, token, *tx.To())

		from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
		require.NoError(t, err)
		assert.Equal(t, s.Address(), from)
	})
	t.Run("Reverted receipt", func(t *testing.T) {
		mock, _ := newChainMock(0)
		client := tests.GetMockEthereumClient(t, mock, "holesky")
		s, err := signer.CreateSigner(ctx, &signer.SigningCredential{PrivateKey: testPrivateKey}, client)
		require.NoError(t, err)

		outcome, err := SendTransaction(ctx, client, s, &Request{
			To: token, Abi: erc20, Method: "approve", Args: []any{spender, big.NewInt(1)},
		}, &SendOptions{Wait: wait}, tests.GetTestLogger())
		var reverted *errorTypes.TransactionRevertedError
		require.ErrorAs(t, err, &reverted)
		assert.Equal(t, outcome.Hash.Hex(), reverted.Hash)
	})
	t.Run("Estimation failure stops before submission", func(t *testing.T) {
		mock, sent := newChainMock(1)
		mock.On("eth_estimateGas", func(params []json.RawMessage) (any, *rpcmock.RpcError) {
			return nil, &rpcmock.RpcError{Code: 3, Message: "execution reverted: ERC20: approve to the zero address"}
		})
		client := tests.GetMockEthereumClient(t, mock, "holesky")
		s, err := signer.CreateSigner(ctx, &signer.SigningCredential{PrivateKey: testPrivateKey}, client)
		require.NoError(t, err)

		_, err = SendTransaction(ctx, client, s, &Request{
			To: token, Abi: erc20, Method: "approve", Args: []any{common.Address{}, big.NewInt(1)},
		}, &SendOptions{Wait: wait}, tests.GetTestLogger())
		var gasErr *errorTypes.GasEstimationError
		require.ErrorAs(t, err, &gasErr)
		assert.Equal(t, "ERC20: approve to the zero address", gasErr.Reason)
		assert.Nil(t, sent.Last())
		assert.Equal(t, 0, mock.Calls("eth_sendRawTransaction"))
	})
}
