package operations

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

type batchCall struct {
	Target   common.Address
	CallData []byte
}

// batchRead forwards pre-encoded calls; every call may fail independently.
func batchRead(ctx context.Context, inv *Invocation) (*records.Record, error) {
	var input []batchCall
	if err := inv.Decode("calls", &input); err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, errorTypes.NewValidationError("calls", "calls array is required and cannot be empty")
	}
	for i, c := range input {
		if c.Target == (common.Address{}) {
			return nil, errorTypes.NewValidationError("calls", "calls[%d].target is required", i)
		}
	}
	caller, err := inv.Caller(ctx)
	if err != nil {
		return nil, err
	}

	chunks := lo.Chunk(input, chunkSize(inv))
	results := make([]any, 0, len(input))
	for _, chunk := range chunks {
		raw, err := caller.BatchRead(ctx, lo.Map(chunk, func(c batchCall, _ int) *contractCaller.Call {
			return &contractCaller.Call{Target: c.Target, CallData: c.CallData, AllowFailure: true}
		}))
		if err != nil {
			return nil, err
		}
		for _, res := range raw {
			results = append(results, records.New().
				Set("index", len(results)).
				Set("success", res.Success).
				Set("returnData", res.ReturnData))
		}
	}

	return inv.Finish(records.New().
		Set("network", string(inv.Network)).
		Set("callCount", len(input)).
		Set("results", results)), nil
}

func chunkSize(inv *Invocation) int {
	if b := inv.executor.config.Batch; b != nil && b.ChunkSize > 0 {
		return b.ChunkSize
	}
	return contractCaller.DefaultChunkSize
}

// getStakerPortfolio reads delegation and deposits in one multicall round trip.
func getStakerPortfolio(ctx context.Context, inv *Invocation) (*records.Record, error) {
	staker, err := inv.Address("stakerAddress")
	if err != nil {
		return nil, err
	}
	dm, err := inv.ContractAddress(registry.Contract_DelegationManager)
	if err != nil {
		return nil, err
	}
	sm, err := inv.ContractAddress(registry.Contract_StrategyManager)
	if err != nil {
		return nil, err
	}
	values, err := inv.ReadAll(ctx, []*contractCaller.CallWithAbi{
		{Target: dm, Abi: contracts.MustGetAbi(registry.Contract_DelegationManager), Method: "delegatedTo", Args: []any{staker}},
		{Target: sm, Abi: contracts.MustGetAbi(registry.Contract_StrategyManager), Method: "getDeposits", Args: []any{staker}},
	})
	if err != nil {
		return nil, err
	}
	operator, _ := values[0].(common.Address)
	strategies, err := decodedAt[[]common.Address](values[1], 0, "getDeposits")
	if err != nil {
		return nil, err
	}
	shares, err := decodedAt[[]*big.Int](values[1], 1, "getDeposits")
	if err != nil {
		return nil, err
	}
	if len(shares) != len(strategies) {
		return nil, &errorTypes.DecodeError{Method: "getDeposits", Err: fmt.Errorf("mismatched strategies and shares")}
	}

	deposits := make([]any, 0, len(strategies))
	for i, strategy := range strategies {
		name, symbol := strategyLabel(inv, strategy)
		deposits = append(deposits, records.New().
			Set("strategy", strategy).
			Set("name", name).
			Set("symbol", symbol).
			Set("shares", shares[i]).
			Set("sharesFormatted", numbers.FormatEther(shares[i])))
	}

	isDelegated := operator != (common.Address{})
	var delegatedTo any
	if isDelegated {
		delegatedTo = operator
	}
	return inv.Finish(records.New().
		Set("staker", staker).
		Set("network", string(inv.Network)).
		Set("isDelegated", isDelegated).
		Set("delegatedTo", delegatedTo).
		Set("totalStrategies", len(strategies)).
		Set("deposits", deposits)), nil
}

// getOperatorSummary reports operator details and the non-zero shares across catalogued strategies.
// Strategies whose read fails are skipped.
func getOperatorSummary(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, dm, a, "isOperator", operator)
	if err != nil {
		return nil, err
	}
	if isOperator, _ := decoded.(bool); !isOperator {
		return inv.Finish(records.New().
			Set("operator", operator).
			Set("network", string(inv.Network)).
			Set("isOperator", false).
			Set("error", "Address is not a registered operator")), nil
	}

	strategies, err := registry.GetStrategies(string(inv.Network))
	if err != nil {
		return nil, err
	}
	calls := []*contractCaller.CallWithAbi{
		{Target: dm, Abi: a, Method: "operatorDetails", Args: []any{operator}},
	}
	for _, s := range strategies {
		calls = append(calls, &contractCaller.CallWithAbi{
			Target: dm, Abi: a, Method: "operatorShares",
			Args: []any{operator, common.HexToAddress(s.Address)},
		})
	}
	results, err := inv.ReadMany(ctx, calls)
	if err != nil {
		return nil, err
	}
	if !results[0].Success {
		return nil, errorTypes.NewValidationError("operatorDetails", "operatorDetails: %s", results[0].Error)
	}
	details, err := convertTuple[OperatorDetails](results[0].DecodedValue, "operatorDetails")
	if err != nil {
		return nil, err
	}

	strategyShares := make([]any, 0)
	for i, s := range strategies {
		res := results[i+1]
		if !res.Success || res.Error != "" {
			continue
		}
		shares, ok := res.DecodedValue.(*big.Int)
		if !ok || shares.Sign() <= 0 {
			continue
		}
		strategyShares = append(strategyShares, records.New().
			Set("strategy", common.HexToAddress(s.Address)).
			Set("name", s.Name).
			Set("symbol", s.Symbol).
			Set("shares", shares).
			Set("sharesFormatted", numbers.FormatEther(shares)))
	}

	return inv.Finish(records.New().
		Set("operator", operator).
		Set("network", string(inv.Network)).
		Set("isOperator", true).
		Set("details", records.New().
			Set("delegationApprover", details.DelegationApprover).
			Set("stakerOptOutWindowBlocks", details.DeprecatedStakerOptOutWindowBlocks)).
		Set("totalStrategies", len(strategyShares)).
		Set("strategyShares", strategyShares)), nil
}
