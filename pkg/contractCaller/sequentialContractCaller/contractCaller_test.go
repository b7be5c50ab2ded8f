package sequentialContractCaller

import (
	"context"
	"math/big"
	"testing"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/internal/tests/rpcmock"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SequentialContractCaller(t *testing.T) {
	ctx := context.Background()
	erc20 := contracts.MustGetAbi(contracts.Contract_ERC20)
	holder := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	tokenA := common.HexToAddress("0x1000000000000000000000000000000000000001")
	tokenB := common.HexToAddress("0x1000000000000000000000000000000000000002")

	setup := func() (*SequentialContractCaller, *rpcmock.RpcMock, *rpcmock.ContractMock) {
		mock := rpcmock.New()
		cm := rpcmock.NewContractMock(mock)
		client := tests.GetMockEthereumClient(t, mock, "holesky")
		return NewSequentialContractCaller(client, tests.GetTestLogger()), mock, cm
	}

	t.Run("One eth_call per call with the multicall result contract", func(t *testing.T) {
		scc, mock, cm := setup()
		cm.Returns(tokenA, erc20, "balanceOf", big.NewInt(42))
		cm.Reverts(tokenB, erc20, "balanceOf", "paused")

		results, err := scc.Multicall(ctx, []*contractCaller.CallWithAbi{
			{Target: tokenA, Abi: erc20, Method: "balanceOf", Args: []any{holder}},
			{Target: tokenB, Abi: erc20, Method: "balanceOf", Args: []any{holder}},
			{Target: tokenA, Abi: erc20, Method: "balanceOf", Args: []any{holder}},
		})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "42", results[0].DecodedValue.(*big.Int).String())
		assert.False(t, results[1].Success)
		assert.Equal(t, "Call reverted", results[1].Error)
		assert.Equal(t, "42", results[2].DecodedValue.(*big.Int).String())
		assert.Equal(t, 3, mock.Calls("eth_call"))
		assert.Equal(t, 3, cm.Calls("balanceOf"))
	})
	t.Run("Strict call failure fails the set", func(t *testing.T) {
		scc, _, cm := setup()
		cm.Reverts(tokenB, erc20, "balanceOf", "paused")
		_, err := scc.Multicall(ctx, []*contractCaller.CallWithAbi{
			{Target: tokenB, Abi: erc20, Method: "balanceOf", Args: []any{holder}, AllowFailure: contractCaller.BoolPtr(false)},
		})
		assert.Error(t, err)
	})
	t.Run("BatchRead keeps revert data", func(t *testing.T) {
		scc, _, cm := setup()
		cm.Reverts(tokenB, erc20, "decimals", "no decimals")
		data, _ := erc20.Pack("decimals")
		results, err := scc.BatchRead(ctx, []*contractCaller.Call{{Target: tokenB, CallData: data, AllowFailure: true}})
		require.NoError(t, err)
		assert.False(t, results[0].Success)
		assert.Equal(t, rpcmock.EncodeRevert("no decimals"), results[0].ReturnData)
	})
}
