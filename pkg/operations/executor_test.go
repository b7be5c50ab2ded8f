package operations

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/internal/tests/rpcmock"
	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signatures"
	"github.com/Layr-Labs/eigenops/pkg/signer"
	"github.com/Layr-Labs/eigenops/pkg/transactions"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	signerAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	staker        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	operator      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	stEthStrategy = common.HexToAddress("0x93c4b944D05dfe6df7645A86cd2206016c51564D")
	stEthToken    = common.HexToAddress("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84")
)

type fixture struct {
	executor  *Executor
	mock      *rpcmock.RpcMock
	contracts *rpcmock.ContractMock
	chain     *rpcmock.Chain
	creds     *StaticCredentials
	addresses *registry.ContractAddresses
}

func setup(t *testing.T) *fixture {
	mock := rpcmock.New()
	cm := rpcmock.NewContractMock(mock)
	chain := rpcmock.NewChain(mock, 1)
	l := tests.GetTestLogger()

	pf, err := ethereum.NewProviderFactory(&ethereum.ProviderFactoryConfig{
		Template: &ethereum.EthereumClientConfig{
			Retry: &ethereum.RetryConfig{MaxRetries: 1, Delay: time.Millisecond, BackoffMultiplier: 2},
		},
		Options: []ethereum.ClientOption{ethereum.WithHttpClient(mock.HttpClient(tests.MockRpcUrl))},
	}, l)
	require.NoError(t, err)

	e := NewExecutor(&ExecutorConfig{
		Wait: &transactions.WaitOptions{Confirmations: 1, Timeout: time.Second, PollInterval: time.Millisecond},
	}, pf, nil, l)

	addresses, err := registry.ResolveAddresses("mainnet")
	require.NoError(t, err)

	return &fixture{
		executor:  e,
		mock:      mock,
		contracts: cm,
		chain:     chain,
		creds: &StaticCredentials{
			Connection: &ethereum.ConnectionCredential{Provider: ethereum.Provider_Custom, CustomRpcUrl: tests.MockRpcUrl},
			Signing:    &signer.SigningCredential{PrivateKey: testPrivateKey},
		},
		addresses: addresses,
	}
}

func (f *fixture) address(role registry.ContractRole) common.Address {
	return common.HexToAddress(f.addresses.Get(role))
}

func (f *fixture) invoke(t *testing.T, name string, params Params) *records.Record {
	t.Helper()
	r, err := f.executor.Invoke(context.Background(), name, params, f.creds)
	require.NoError(t, err)
	return r
}

func get(t *testing.T, r *records.Record, key string) any {
	t.Helper()
	v, ok := r.Get(key)
	require.True(t, ok, "missing %s in %s", key, r.String())
	return v
}

func Test_Executor(t *testing.T) {
	ctx := context.Background()

	t.Run("Descriptors are unique and sorted", func(t *testing.T) {
		f := setup(t)
		ds := f.executor.Descriptors()
		assert.Equal(t, len(AllDescriptors()), len(ds))
		for i := 1; i < len(ds); i++ {
			assert.Less(t, ds[i-1].Name(), ds[i].Name())
		}
		for _, d := range ds {
			if d.Handler == nil {
				_, err := contracts.GetAbi(d.Contract)
				require.NoError(t, err, d.Name())
				a := contracts.MustGetAbi(d.Contract)
				_, ok := a.Methods[d.Method]
				assert.True(t, ok, "%s calls unknown method %s", d.Name(), d.Method)
			}
		}
	})

	t.Run("Unknown operation", func(t *testing.T) {
		f := setup(t)
		_, err := f.executor.Invoke(ctx, "strategyManager.nope", Params{}, f.creds)
		var unknown *errorTypes.UnknownOperationError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "strategyManager.nope", unknown.Operation)
	})

	t.Run("Unsupported network", func(t *testing.T) {
		f := setup(t)
		_, err := f.executor.Invoke(ctx, "delegationManager.isOperator", Params{
			"network":         "goerli",
			"operatorAddress": operator.Hex(),
		}, f.creds)
		require.Error(t, err)
		assert.Equal(t, 0, f.mock.Calls("eth_call"))
	})

	t.Run("Invalid address fails before any rpc", func(t *testing.T) {
		f := setup(t)
		_, err := f.executor.Invoke(ctx, "strategyManager.getStakerStrategyShares", Params{
			"stakerAddress":   "0x1234",
			"strategyAddress": stEthStrategy.Hex(),
		}, f.creds)
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, 0, f.mock.Calls("eth_call"))
	})

	t.Run("Zero shares format as 0.0", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_StrategyManager), contracts.MustGetAbi(registry.Contract_StrategyManager),
			"stakerDepositShares", big.NewInt(0))

		r := f.invoke(t, "strategyManager.getStakerStrategyShares", Params{
			"stakerAddress":   staker.Hex(),
			"strategyAddress": stEthStrategy.Hex(),
		})
		assert.Equal(t, staker.Hex(), get(t, r, "staker"))
		assert.Equal(t, stEthStrategy.Hex(), get(t, r, "strategy"))
		assert.Equal(t, "Lido Staked ETH Strategy", get(t, r, "strategyName"))
		assert.Equal(t, "stETH", get(t, r, "symbol"))
		assert.Equal(t, "0", get(t, r, "shares"))
		assert.Equal(t, "0.0", get(t, r, "sharesFormatted"))
		assert.Equal(t, "mainnet", get(t, r, "network"))
	})

	t.Run("Uncatalogued strategy gets placeholder labels", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_StrategyManager), contracts.MustGetAbi(registry.Contract_StrategyManager),
			"stakerDepositShares", big.NewInt(1_500_000_000_000_000_000))

		r := f.invoke(t, "strategyManager.getStakerStrategyShares", Params{
			"stakerAddress":   staker.Hex(),
			"strategyAddress": "0x1000000000000000000000000000000000000001",
		})
		assert.Equal(t, "Unknown Strategy", get(t, r, "strategyName"))
		assert.Equal(t, "UNKNOWN", get(t, r, "symbol"))
		assert.Equal(t, "1.5", get(t, r, "sharesFormatted"))
	})

	t.Run("Delegated operator", func(t *testing.T) {
		f := setup(t)
		dm := contracts.MustGetAbi(registry.Contract_DelegationManager)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), dm, "delegatedTo", operator)

		r := f.invoke(t, "delegationManager.getDelegatedOperator", Params{"stakerAddress": staker.Hex()})
		assert.Equal(t, operator.Hex(), get(t, r, "delegatedTo"))
		assert.Equal(t, true, get(t, r, "isDelegated"))

		f.contracts.Returns(f.address(registry.Contract_DelegationManager), dm, "delegatedTo", common.Address{})
		r = f.invoke(t, "delegationManager.getDelegatedOperator", Params{"stakerAddress": staker.Hex()})
		assert.Equal(t, false, get(t, r, "isDelegated"))
	})

	t.Run("Reverted read surfaces as a caller error", func(t *testing.T) {
		f := setup(t)
		f.contracts.Reverts(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"isOperator", "paused")

		_, err := f.executor.Invoke(ctx, "delegationManager.isOperator", Params{"operatorAddress": operator.Hex()}, f.creds)
		require.Error(t, err)
		assert.True(t, errorTypes.IsCallerError(err))
	})

	t.Run("Sequential reads use eth_call directly", func(t *testing.T) {
		f := setup(t)
		f.executor.config.Sequential = true
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"isOperator", true)

		r := f.invoke(t, "delegationManager.isOperator", Params{"operatorAddress": operator.Hex()})
		assert.Equal(t, true, get(t, r, "isOperator"))
		assert.Equal(t, operator.Hex(), get(t, r, "address"))
	})

	t.Run("Negative pod owner shares", func(t *testing.T) {
		f := setup(t)
		negative, _ := new(big.Int).SetString("-2000000000000000000", 10)
		f.contracts.Returns(f.address(registry.Contract_EigenPodManager), contracts.MustGetAbi(registry.Contract_EigenPodManager),
			"podOwnerDepositShares", negative)

		r := f.invoke(t, "eigenPodManager.getPodOwnerShares", Params{"podOwnerAddress": staker.Hex()})
		assert.Equal(t, "-2000000000000000000", get(t, r, "shares"))
		assert.Equal(t, "2.0", get(t, r, "sharesFormatted"))
		assert.Equal(t, true, get(t, r, "isNegative"))
	})

	t.Run("Operator summary for a non-operator", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"isOperator", false)

		r := f.invoke(t, "multicall.getOperatorSummary", Params{"operatorAddress": staker.Hex()})
		assert.Equal(t, false, get(t, r, "isOperator"))
		assert.Equal(t, "Address is not a registered operator", get(t, r, "error"))
		assert.Equal(t, 0, f.contracts.Calls("operatorShares"))
	})

	t.Run("Operator summary skips zero and failed strategies", func(t *testing.T) {
		f := setup(t)
		dmAddress := f.address(registry.Contract_DelegationManager)
		dm := contracts.MustGetAbi(registry.Contract_DelegationManager)
		f.contracts.Returns(dmAddress, dm, "isOperator", true)
		f.contracts.Returns(dmAddress, dm, "operatorDetails", OperatorDetails{
			DelegationApprover:                 common.Address{},
			DeprecatedStakerOptOutWindowBlocks: 50400,
		})
		f.contracts.Handle(dmAddress, dm, "operatorShares", func(args []any) ([]any, error) {
			switch args[1].(common.Address) {
			case stEthStrategy:
				return []any{big.NewInt(3_000_000_000_000_000_000)}, nil
			case common.HexToAddress("0x1BeE69b7dFFfA4E2d53C2a2Df135C388AD25dCD2"):
				return nil, errors.New("boom")
			}
			return []any{big.NewInt(0)}, nil
		})

		r := f.invoke(t, "multicall.getOperatorSummary", Params{"operatorAddress": operator.Hex()})
		assert.Equal(t, true, get(t, r, "isOperator"))
		assert.Equal(t, "1", get(t, r, "totalStrategies"))

		details := get(t, r, "details").(*records.Record)
		assert.Equal(t, "50400", get(t, details, "stakerOptOutWindowBlocks"))

		shares := get(t, r, "strategyShares").([]any)
		require.Len(t, shares, 1)
		first := shares[0].(*records.Record)
		assert.Equal(t, "stETH", get(t, first, "symbol"))
		assert.Equal(t, "3.0", get(t, first, "sharesFormatted"))
	})

	t.Run("Staker portfolio", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"delegatedTo", common.Address{})
		f.contracts.Returns(f.address(registry.Contract_StrategyManager), contracts.MustGetAbi(registry.Contract_StrategyManager),
			"getDeposits", []common.Address{stEthStrategy}, []*big.Int{big.NewInt(1_000_000_000_000_000_000)})

		r := f.invoke(t, "multicall.getStakerPortfolio", Params{"stakerAddress": staker.Hex()})
		assert.Equal(t, false, get(t, r, "isDelegated"))
		assert.Nil(t, get(t, r, "delegatedTo"))
		assert.Equal(t, "1", get(t, r, "totalStrategies"))
		deposit := get(t, r, "deposits").([]any)[0].(*records.Record)
		assert.Equal(t, "1.0", get(t, deposit, "sharesFormatted"))
	})
}

func Test_Writes(t *testing.T) {
	ctx := context.Background()

	t.Run("Deposit skips approval when the allowance covers the amount", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(stEthToken, contracts.MustGetAbi(contracts.Contract_ERC20), "allowance", math.MaxBig256)

		r := f.invoke(t, "strategyManager.depositIntoStrategy", Params{
			"strategyAddress": stEthStrategy.Hex(),
			"tokenAddress":    stEthToken.Hex(),
			"amount":          "1000000000000000000",
		})
		assert.Equal(t, true, get(t, r, "success"))
		assert.Equal(t, "1000000000000000000", get(t, r, "amountWei"))
		assert.Equal(t, "1000000000000000000", get(t, r, "amount"))
		assert.Equal(t, signerAddress.Hex(), get(t, r, "depositor"))
		assert.Equal(t, "Lido Staked ETH Strategy", get(t, r, "strategyName"))
		assert.Equal(t, "101", get(t, r, "blockNumber"))
		assert.Equal(t, "21000", get(t, r, "gasUsed"))
		assert.Equal(t, "0.000021", get(t, r, "gasCost"))

		sent := f.chain.Transactions()
		require.Len(t, sent, 1)
		assert.Equal(t, f.address(registry.Contract_StrategyManager), *sent[0].To())
		assert.Equal(t, sent[0].Hash().Hex(), get(t, r, "transactionHash"))
	})

	t.Run("Deposit approves first when the allowance is short", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(stEthToken, contracts.MustGetAbi(contracts.Contract_ERC20), "allowance", big.NewInt(0))

		f.invoke(t, "strategyManager.depositIntoStrategy", Params{
			"strategyAddress": stEthStrategy.Hex(),
			"tokenAddress":    stEthToken.Hex(),
			"amount":          "1000000000000000000",
		})
		sent := f.chain.Transactions()
		require.Len(t, sent, 2)
		assert.Equal(t, stEthToken, *sent[0].To())
		assert.Equal(t, f.address(registry.Contract_StrategyManager), *sent[1].To())
	})

	t.Run("Deposit in whole tokens reads decimals", func(t *testing.T) {
		f := setup(t)
		erc20 := contracts.MustGetAbi(contracts.Contract_ERC20)
		f.contracts.Returns(stEthToken, erc20, "decimals", uint8(6))

		r := f.invoke(t, "strategyManager.depositIntoStrategy", Params{
			"strategyAddress": stEthStrategy.Hex(),
			"tokenAddress":    stEthToken.Hex(),
			"amount":          "2.5",
			"amountUnit":      "token",
			"approveFirst":    false,
		})
		assert.Equal(t, "2500000", get(t, r, "amountWei"))
		assert.Equal(t, 0, f.contracts.Calls("allowance"))
	})

	t.Run("Zero deposit is rejected", func(t *testing.T) {
		f := setup(t)
		_, err := f.executor.Invoke(ctx, "strategyManager.depositIntoStrategy", Params{
			"strategyAddress": stEthStrategy.Hex(),
			"tokenAddress":    stEthToken.Hex(),
			"amount":          "0",
		}, f.creds)
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Empty(t, f.chain.Transactions())
	})

	t.Run("Reverted write fails the invocation", func(t *testing.T) {
		f := setup(t)
		f.chain.SetStatus(0)
		_, err := f.executor.Invoke(ctx, "delegationManager.undelegate", Params{}, f.creds)
		var reverted *errorTypes.TransactionRevertedError
		require.ErrorAs(t, err, &reverted)
	})

	t.Run("Undelegate defaults the staker to the signer", func(t *testing.T) {
		f := setup(t)
		r := f.invoke(t, "delegationManager.undelegate", Params{})
		assert.Equal(t, true, get(t, r, "success"))
		assert.Equal(t, signerAddress.Hex(), get(t, r, "staker"))
	})

	t.Run("Stake sends 32 ETH", func(t *testing.T) {
		f := setup(t)
		pubkey := "0x" + strings.Repeat("ab", 48)
		signature := "0x" + strings.Repeat("cd", 96)
		r := f.invoke(t, "eigenPodManager.stake", Params{
			"pubkey":          pubkey,
			"signature":       signature,
			"depositDataRoot": "0x" + strings.Repeat("ef", 32),
		})
		assert.Equal(t, "32", get(t, r, "depositAmount"))
		assert.Equal(t, BeaconDepositWei.String(), f.chain.Last().Value().String())
	})

	t.Run("Completing with a mismatched root sends nothing", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"calculateWithdrawalRoot", [32]byte{1})

		_, err := f.executor.Invoke(ctx, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawalRoot": "0x" + strings.Repeat("02", 32),
			"withdrawal": map[string]any{
				"staker":       staker.Hex(),
				"delegatedTo":  operator.Hex(),
				"withdrawer":   staker.Hex(),
				"nonce":        "0",
				"startBlock":   90,
				"strategies":   []any{stEthStrategy.Hex()},
				"scaledShares": []any{"1000"},
			},
		}, f.creds)
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, err.Error(), "does not match root")
		assert.Empty(t, f.chain.Transactions())
	})

	t.Run("Completing resolves underlying tokens", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"calculateWithdrawalRoot", [32]byte{1})
		f.contracts.Returns(stEthStrategy, contracts.MustGetAbi(contracts.Contract_Strategy), "underlyingToken", stEthToken)

		r := f.invoke(t, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawal": map[string]any{
				"staker":       staker.Hex(),
				"delegatedTo":  operator.Hex(),
				"withdrawer":   signerAddress.Hex(),
				"nonce":        "0",
				"startBlock":   90,
				"strategies":   []any{stEthStrategy.Hex(), registry.BeaconChainETHStrategy},
				"scaledShares": []any{"1000", "2000"},
			},
		})
		assert.Equal(t, true, get(t, r, "receiveAsTokens"))
		assert.Equal(t, []any{stEthToken.Hex(), common.Address{}.Hex()}, get(t, r, "tokens"))
	})
}

func Test_Execute(t *testing.T) {
	ctx := context.Background()
	items := func() []ParameterSource {
		return []ParameterSource{
			Params{"operatorAddress": operator.Hex()},
			Params{"operatorAddress": "not-an-address"},
			Params{"operatorAddress": staker.Hex()},
		}
	}

	t.Run("Continue on fail yields an error record per failed item", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"isOperator", true)

		out, err := f.executor.Execute(ctx, "delegationManager.isOperator", items(), f.creds, true)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, true, get(t, out[0], "isOperator"))
		assert.NotEmpty(t, out[1].GetString("error"))
		assert.Equal(t, 1, out[1].Len())
		assert.Equal(t, staker.Hex(), get(t, out[2], "address"))
	})

	t.Run("First failure stops the run", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"isOperator", true)

		out, err := f.executor.Execute(ctx, "delegationManager.isOperator", items(), f.creds, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1")
		assert.Len(t, out, 1)
		assert.Equal(t, 1, f.contracts.Calls("isOperator"))
	})
}

func Test_Signatures(t *testing.T) {
	t.Run("Delegation approval recovers to the signer", func(t *testing.T) {
		f := setup(t)
		r := f.invoke(t, "signature.signDelegationApproval", Params{
			"stakerAddress":   staker.Hex(),
			"operatorAddress": operator.Hex(),
			"expiryHours":     1,
		})
		td, err := signatures.BuildTypedData(
			signatures.CreateDomain(1, f.address(registry.Contract_DelegationManager)),
			signatures.DelegationApprovalTypes,
			apitypes.TypedDataMessage{
				"delegationApprover": signerAddress.Hex(),
				"staker":             staker.Hex(),
				"operator":           operator.Hex(),
				"salt":               get(t, r, "salt"),
				"expiry":             get(t, r, "expiry"),
			},
		)
		require.NoError(t, err)
		recovered, err := signatures.VerifyTypedDataSignature(td, r.GetString("signature"))
		require.NoError(t, err)
		assert.Equal(t, signerAddress, recovered)
		assert.Equal(t, 0, f.mock.Calls("eth_call"))
	})

	t.Run("Staker delegation reads the nonce when absent", func(t *testing.T) {
		f := setup(t)
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), contracts.MustGetAbi(registry.Contract_DelegationManager),
			"stakerNonce", big.NewInt(7))

		r := f.invoke(t, "signature.signStakerDelegation", Params{"operatorAddress": operator.Hex()})
		assert.Equal(t, "7", get(t, r, "nonce"))
		assert.Len(t, r.GetString("signature"), 132)
	})

	t.Run("Salt and expiry helpers", func(t *testing.T) {
		f := setup(t)
		r := f.invoke(t, "signature.generateSalt", Params{})
		assert.Len(t, r.GetString("salt"), 66)

		r = f.invoke(t, "signature.calculateExpiry", Params{"expiryHours": 2})
		assert.Equal(t, "2", get(t, r, "expiryHours"))
		expiry, ok := new(big.Int).SetString(r.GetString("expiry"), 10)
		require.True(t, ok)
		assert.InDelta(t, time.Now().Add(2*time.Hour).Unix(), expiry.Int64(), 5)
	})
}

type logRange struct {
	FromBlock hexutil.Uint64 `json:"fromBlock"`
	ToBlock   hexutil.Uint64 `json:"toBlock"`
}

// serveWithdrawalLogs answers eth_getLogs with logs and records every requested range.
func serveWithdrawalLogs(f *fixture, logs []types.Log) *[]logRange {
	ranges := &[]logRange{}
	f.mock.On("eth_getLogs", func(params []json.RawMessage) (any, *rpcmock.RpcError) {
		var r logRange
		if err := rpcmock.DecodeParam(params, 0, &r); err != nil {
			return nil, &rpcmock.RpcError{Code: -32602, Message: err.Error()}
		}
		*ranges = append(*ranges, r)
		out := make([]types.Log, 0, len(logs))
		for _, lg := range logs {
			if lg.BlockNumber >= uint64(r.FromBlock) && lg.BlockNumber <= uint64(r.ToBlock) {
				out = append(out, lg)
			}
		}
		return out, nil
	})
	return ranges
}

func Test_CompleteQueuedWithdrawalFromLogs(t *testing.T) {
	ctx := context.Background()
	dmAbi := contracts.MustGetAbi(registry.Contract_DelegationManager)
	root := [32]byte{7}
	queued := Withdrawal{
		Staker:                 staker,
		DelegatedTo:            operator,
		Withdrawer:             signerAddress,
		Nonce:                  big.NewInt(3),
		StartBlock:             90,
		Strategies:             []common.Address{stEthStrategy},
		ScaledSharesToWithdraw: []ScaledShares{{ScaledShares: big.NewInt(1000)}},
	}
	queuedLog := func(t *testing.T, f *fixture, block uint64) types.Log {
		event := dmAbi.Events["WithdrawalQueued"]
		data, err := event.Inputs.Pack(root, queued)
		require.NoError(t, err)
		return types.Log{
			Address:     f.address(registry.Contract_DelegationManager),
			Topics:      []common.Hash{event.ID},
			Data:        data,
			BlockNumber: block,
			TxHash:      common.HexToHash("0x0abc"),
			BlockHash:   common.HexToHash("0x0def"),
		}
	}

	t.Run("Root at a known start block recovers the withdrawal that is sent", func(t *testing.T) {
		f := setup(t)
		ranges := serveWithdrawalLogs(f, []types.Log{queuedLog(t, f, 90)})
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), dmAbi, "calculateWithdrawalRoot", root)
		f.contracts.Returns(stEthStrategy, contracts.MustGetAbi(contracts.Contract_Strategy), "underlyingToken", stEthToken)

		r := f.invoke(t, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawalRoot": common.Hash(root).Hex(),
			"startBlock":     90,
		})
		assert.Equal(t, common.Hash(root).Hex(), get(t, r, "withdrawalRoot"))
		require.Equal(t, []logRange{{FromBlock: 90, ToBlock: 90}}, *ranges)

		tx := f.chain.Last()
		require.NotNil(t, tx)
		method := dmAbi.Methods["completeQueuedWithdrawal"]
		assert.Equal(t, method.ID, tx.Data()[:4])
		values, err := method.Inputs.Unpack(tx.Data()[4:])
		require.NoError(t, err)
		sent, err := convertTuple[Withdrawal](values[0], "completeQueuedWithdrawal")
		require.NoError(t, err)
		assert.Equal(t, staker, sent.Staker)
		assert.Equal(t, int64(3), sent.Nonce.Int64())
		assert.Equal(t, uint32(90), sent.StartBlock)
		assert.Equal(t, []common.Address{stEthStrategy}, sent.Strategies)
		assert.Equal(t, []common.Address{stEthToken}, values[1])
	})

	t.Run("Unknown root is a validation error and nothing is sent", func(t *testing.T) {
		f := setup(t)
		serveWithdrawalLogs(f, nil)

		_, err := f.executor.Invoke(ctx, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawalRoot": common.Hash(root).Hex(),
			"startBlock":     90,
		}, f.creds)
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "withdrawalRoot", validation.Field)
		assert.Empty(t, f.chain.Transactions())
		assert.Equal(t, 0, f.contracts.Calls("calculateWithdrawalRoot"))
	})

	t.Run("Look-back walks windows from head down to the floor without gaps", func(t *testing.T) {
		f := setup(t)
		f.mock.OnResult("eth_blockNumber", rpcmock.HexUint(25_000))
		ranges := serveWithdrawalLogs(f, nil)

		_, err := f.executor.Invoke(ctx, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawalRoot": common.Hash(root).Hex(),
			"lookbackBlocks": 22_000,
		}, f.creds)
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)

		assert.Equal(t, []logRange{
			{FromBlock: 15_001, ToBlock: 25_000},
			{FromBlock: 5_001, ToBlock: 15_000},
			{FromBlock: 3_000, ToBlock: 5_000},
		}, *ranges)
		assert.Empty(t, f.chain.Transactions())
	})

	t.Run("Look-back finds a withdrawal in an older window", func(t *testing.T) {
		f := setup(t)
		f.mock.OnResult("eth_blockNumber", rpcmock.HexUint(25_000))
		ranges := serveWithdrawalLogs(f, []types.Log{queuedLog(t, f, 4_000)})
		f.contracts.Returns(f.address(registry.Contract_DelegationManager), dmAbi, "calculateWithdrawalRoot", root)

		r := f.invoke(t, "delegationManager.completeQueuedWithdrawal", Params{
			"withdrawalRoot": common.Hash(root).Hex(),
			"lookbackBlocks": 22_000,
			"tokens":         []any{stEthToken.Hex()},
		})
		assert.Equal(t, common.Hash(root).Hex(), get(t, r, "withdrawalRoot"))
		assert.Len(t, *ranges, 3)
		assert.Len(t, f.chain.Transactions(), 1)
	})
}

func Test_StatusOutputs(t *testing.T) {
	t.Run("AVS registration status is a decimal string", func(t *testing.T) {
		f := setup(t)
		avs := common.HexToAddress("0x870679E138bCdf293b7Ff14dD44b70FC97e12fc0")
		f.contracts.Returns(f.address(registry.Contract_AVSDirectory), contracts.MustGetAbi(registry.Contract_AVSDirectory),
			"avsOperatorStatus", uint8(1))

		r := f.invoke(t, "avsDirectory.getOperatorAvsStatus", Params{
			"operatorAddress": operator.Hex(),
			"avsAddress":      avs.Hex(),
		})
		assert.Equal(t, "1", get(t, r, "status"))
	})
	t.Run("Validator status is a decimal string", func(t *testing.T) {
		f := setup(t)
		pod := common.HexToAddress("0x2641c2ded63a0c640629f5edf1189e0f53c06561")
		f.contracts.Returns(pod, contracts.MustGetAbi(contracts.Contract_EigenPod), "validatorStatus", uint8(2))

		r := f.invoke(t, "eigenPod.getValidatorStatus", Params{
			"podAddress":      pod.Hex(),
			"validatorPubkey": "0x" + strings.Repeat("ab", 32),
		})
		assert.Equal(t, "2", get(t, r, "status"))
	})
}

func Test_DecodeFailures(t *testing.T) {
	// same selector as isOperator but a string return, so the bool decode fails
	mismatched, err := abi.JSON(strings.NewReader(`[{"type":"function","name":"isOperator","stateMutability":"view",
		"inputs":[{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"string"}]}]`))
	require.NoError(t, err)

	f := setup(t)
	f.contracts.Returns(f.address(registry.Contract_DelegationManager), &mismatched, "isOperator", "not a bool")

	_, err = f.executor.Invoke(context.Background(), "delegationManager.isOperator", Params{"operatorAddress": operator.Hex()}, f.creds)
	var decodeErr *errorTypes.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "isOperator", decodeErr.Method)
	assert.Equal(t, 1, strings.Count(err.Error(), "Failed to decode"))
	assert.False(t, errorTypes.IsCallerError(err))
}
