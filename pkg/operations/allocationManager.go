package operations

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type OperatorSet struct {
	Avs           common.Address `abi:"avs"`
	OperatorSetId uint32         `abi:"operatorSetId"`
}

type Allocation struct {
	CurrentMagnitude uint64   `abi:"currentMagnitude"`
	PendingDiff      *big.Int `abi:"pendingDiff"`
	EffectBlock      uint32   `abi:"effectBlock"`
}

type AllocateParams struct {
	OperatorSet   OperatorSet      `abi:"operatorSet"`
	Strategies    []common.Address `abi:"strategies"`
	NewMagnitudes []uint64         `abi:"newMagnitudes"`
}

func allocationManager(inv *Invocation) (common.Address, *abi.ABI, error) {
	addr, err := inv.ContractAddress(registry.Contract_AllocationManager)
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, contracts.MustGetAbi(registry.Contract_AllocationManager), nil
}

func operatorSetId(inv *Invocation) (uint32, error) {
	v, err := inv.Param("operatorSetId", Param_Uint32)
	if err != nil {
		return 0, err
	}
	return v.(uint32), nil
}

func getAllocation(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	strategy, err := inv.Address("strategyAddress")
	if err != nil {
		return nil, err
	}
	avs, err := inv.Address("avsAddress")
	if err != nil {
		return nil, err
	}
	setId, err := operatorSetId(inv)
	if err != nil {
		return nil, err
	}
	am, a, err := allocationManager(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, am, a, "getAllocation", operator, OperatorSet{Avs: avs, OperatorSetId: setId}, strategy)
	if err != nil {
		return nil, err
	}
	allocation, err := convertTuple[Allocation](decoded, "getAllocation")
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("operator", operator).
		Set("strategy", strategy).
		Set("avs", avs).
		Set("operatorSetId", setId).
		Set("allocation", records.New().
			Set("currentMagnitude", allocation.CurrentMagnitude).
			Set("pendingDiff", allocation.PendingDiff).
			Set("effectBlock", allocation.EffectBlock))), nil
}

// modifyAllocations sets one strategy's magnitude in one operator set. The AVS defaults to the signer.
func modifyAllocations(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	strategy, err := inv.Address("strategyAddress")
	if err != nil {
		return nil, err
	}
	setId, err := operatorSetId(inv)
	if err != nil {
		return nil, err
	}
	magnitude, err := inv.Param("newMagnitude", Param_Uint64)
	if err != nil {
		return nil, err
	}
	avs, err := inv.AddressOr("avsAddress", common.Address{})
	if err != nil {
		return nil, err
	}
	am, a, err := allocationManager(inv)
	if err != nil {
		return nil, err
	}
	if avs == (common.Address{}) {
		if avs, err = inv.SignerAddress(ctx); err != nil {
			return nil, err
		}
	}
	if operator == (common.Address{}) {
		return nil, errorTypes.NewValidationError("operatorAddress", "operatorAddress cannot be the zero address")
	}

	params := []AllocateParams{{
		OperatorSet:   OperatorSet{Avs: avs, OperatorSetId: setId},
		Strategies:    []common.Address{strategy},
		NewMagnitudes: []uint64{magnitude.(uint64)},
	}}
	outcome, err := inv.Send(ctx, am, a, "modifyAllocations", nil, operator, params)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("operator", operator).
		Set("strategy", strategy).
		Set("operatorSetId", setId).
		Set("newMagnitude", magnitude)), nil
}
