package multicallContractCaller

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/internal/tests/rpcmock"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	holder = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	tokenA = common.HexToAddress("0x1000000000000000000000000000000000000001")
	tokenB = common.HexToAddress("0x1000000000000000000000000000000000000002")
	tokenC = common.HexToAddress("0x1000000000000000000000000000000000000003")
)

// same selector as ERC-20 balanceOf, but declares two outputs
const wrongOutputsAbi = `[{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"a","type":"uint256"},{"name":"b","type":"uint256"}],"stateMutability":"view","type":"function"}]`

func setup(t *testing.T) (*MulticallContractCaller, *rpcmock.RpcMock, *rpcmock.ContractMock) {
	mock := rpcmock.New()
	cm := rpcmock.NewContractMock(mock)
	client := tests.GetMockEthereumClient(t, mock, "mainnet")
	return NewMulticallContractCaller(client, tests.GetTestLogger()), mock, cm
}

func balanceCall(token common.Address) *contractCaller.CallWithAbi {
	return &contractCaller.CallWithAbi{
		Target: token,
		Abi:    contracts.MustGetAbi(contracts.Contract_ERC20),
		Method: "balanceOf",
		Args:   []any{holder},
	}
}

func Test_MulticallContractCaller(t *testing.T) {
	ctx := context.Background()
	erc20 := contracts.MustGetAbi(contracts.Contract_ERC20)

	t.Run("Preserves order and isolates failures", func(t *testing.T) {
		cc, mock, cm := setup(t)
		cm.Returns(tokenA, erc20, "balanceOf", big.NewInt(10))
		cm.Reverts(tokenB, erc20, "balanceOf", "paused")
		cm.Returns(tokenC, erc20, "balanceOf", big.NewInt(30))

		wrongAbi, err := abi.JSON(strings.NewReader(wrongOutputsAbi))
		require.NoError(t, err)
		badDecode := balanceCall(tokenC)
		badDecode.Abi = &wrongAbi

		results, err := cc.Multicall(ctx, []*contractCaller.CallWithAbi{
			balanceCall(tokenA),
			balanceCall(tokenB),
			badDecode,
			balanceCall(tokenC),
		})
		require.NoError(t, err)
		require.Len(t, results, 4)

		assert.True(t, results[0].Success)
		assert.Equal(t, "10", results[0].DecodedValue.(*big.Int).String())

		assert.False(t, results[1].Success)
		assert.Equal(t, "Call reverted", results[1].Error)

		assert.True(t, results[2].Success)
		assert.Nil(t, results[2].DecodedValue)
		assert.True(t, strings.HasPrefix(results[2].Error, "Failed to decode: "))
		require.NotNil(t, results[2].DecodeErr)
		assert.Equal(t, results[2].Error, results[2].DecodeErr.Error())

		assert.True(t, results[3].Success)
		assert.Equal(t, "30", results[3].DecodedValue.(*big.Int).String())

		// one aggregate3 round trip
		assert.Equal(t, 1, mock.Calls("eth_call"))
	})
	t.Run("Multiple outputs stay ordered", func(t *testing.T) {
		cc, _, cm := setup(t)
		dm := contracts.MustGetAbi(registry.Contract_DelegationManager)
		target := common.HexToAddress("0x39053D51B77DC0d36036Fc1fCc8Cb819df8Ef37A")
		cm.Returns(target, dm, "getWithdrawableShares", []*big.Int{big.NewInt(1)}, []*big.Int{big.NewInt(2)})

		results, err := cc.Multicall(ctx, []*contractCaller.CallWithAbi{{
			Target: target,
			Abi:    dm,
			Method: "getWithdrawableShares",
			Args:   []any{holder, []common.Address{tokenA}},
		}})
		require.NoError(t, err)
		values, ok := results[0].DecodedValue.([]any)
		require.True(t, ok)
		require.Len(t, values, 2)
		assert.Equal(t, "2", values[1].([]*big.Int)[0].String())
	})
	t.Run("Encoding failure aborts before network I/O", func(t *testing.T) {
		cc, mock, _ := setup(t)
		bad := balanceCall(tokenA)
		bad.Args = []any{"not-an-address"}
		_, err := cc.Multicall(ctx, []*contractCaller.CallWithAbi{balanceCall(tokenB), bad})
		var ve *errorTypes.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "calls[1]", ve.Field)
		assert.Equal(t, 0, mock.Calls("eth_call"))
	})
	t.Run("Empty input", func(t *testing.T) {
		cc, mock, _ := setup(t)
		results, err := cc.Multicall(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 0, mock.Calls("eth_call"))
	})
	t.Run("Disallowed failure reverts the batch", func(t *testing.T) {
		cc, _, cm := setup(t)
		cm.Reverts(tokenB, erc20, "balanceOf", "paused")
		strict := balanceCall(tokenB)
		strict.AllowFailure = contractCaller.BoolPtr(false)
		_, err := cc.Multicall(ctx, []*contractCaller.CallWithAbi{strict})
		assert.Error(t, err)
	})
	t.Run("BatchRead returns raw results", func(t *testing.T) {
		cc, _, cm := setup(t)
		cm.Returns(tokenA, erc20, "decimals", uint8(6))
		data, err := erc20.Pack("decimals")
		require.NoError(t, err)

		results, err := cc.BatchRead(ctx, []*contractCaller.Call{
			{Target: tokenA, CallData: data, AllowFailure: true},
			{Target: tokenB, CallData: data, AllowFailure: true},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 0, results[0].Index)
		assert.True(t, results[0].Success)
		assert.Equal(t, byte(6), results[0].ReturnData[31])
		assert.Equal(t, 1, results[1].Index)
		assert.False(t, results[1].Success)
	})
	t.Run("BatchedMulticall keeps global order across chunks", func(t *testing.T) {
		cc, mock, cm := setup(t)
		calls := make([]*contractCaller.CallWithAbi, 0)
		for i := 0; i < 23; i++ {
			token := common.HexToAddress(fmt.Sprintf("0x20000000000000000000000000000000000000%02x", i))
			cm.Returns(token, erc20, "balanceOf", big.NewInt(int64(i)))
			calls = append(calls, balanceCall(token))
		}
		results, err := contractCaller.BatchedMulticall(ctx, cc, calls, &contractCaller.BatchOptions{ChunkSize: 5, Concurrency: 2})
		require.NoError(t, err)
		require.Len(t, results, 23)
		for i, r := range results {
			assert.Equal(t, int64(i), r.DecodedValue.(*big.Int).Int64())
		}
		assert.Equal(t, 5, mock.Calls("eth_call"))
	})
}
