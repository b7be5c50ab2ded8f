package operations

import (
	"context"

	rewardsCoordinator "github.com/Layr-Labs/eigenlayer-contracts/pkg/bindings/IRewardsCoordinator"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

func rewardsCoordinatorContract(inv *Invocation) (common.Address, *abi.ABI, error) {
	addr, err := inv.ContractAddress(registry.Contract_RewardsCoordinator)
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, contracts.MustGetAbi(registry.Contract_RewardsCoordinator), nil
}

// claimParam decodes a RewardsMerkleClaim supplied as an object or JSON text.
func claimParam(inv *Invocation) (*rewardsCoordinator.IRewardsCoordinatorRewardsMerkleClaim, error) {
	var claim rewardsCoordinator.IRewardsCoordinatorRewardsMerkleClaim
	if err := inv.Decode("claim", &claim); err != nil {
		return nil, err
	}
	if claim.EarnerLeaf.Earner == (common.Address{}) {
		return nil, errorTypes.NewValidationError("claim", "claim.earnerLeaf.earner is required")
	}
	if len(claim.TokenIndices) != len(claim.TokenLeaves) || len(claim.TokenTreeProofs) != len(claim.TokenLeaves) {
		return nil, errorTypes.NewValidationError("claim", "claim token indices, proofs and leaves must have the same length")
	}
	return &claim, nil
}

func distributionRootRecord(root *rewardsCoordinator.IRewardsCoordinatorDistributionRoot) *records.Record {
	return records.New().
		Set("root", root.Root).
		Set("rewardsCalculationEndTimestamp", root.RewardsCalculationEndTimestamp).
		Set("activatedAt", root.ActivatedAt).
		Set("disabled", root.Disabled)
}

func getCurrentDistributionRoot(ctx context.Context, inv *Invocation) (*records.Record, error) {
	rc, a, err := rewardsCoordinatorContract(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, rc, a, "getCurrentDistributionRoot")
	if err != nil {
		return nil, err
	}
	root, err := convertTuple[rewardsCoordinator.IRewardsCoordinatorDistributionRoot](decoded, "getCurrentDistributionRoot")
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().Set("distributionRoot", distributionRootRecord(root))), nil
}

// checkClaim reports whether a claim verifies against its root. A reverting check is reported as invalid.
func checkClaim(ctx context.Context, inv *Invocation) (*records.Record, error) {
	claim, err := claimParam(inv)
	if err != nil {
		return nil, err
	}
	rc, a, err := rewardsCoordinatorContract(inv)
	if err != nil {
		return nil, err
	}
	r := records.New().
		Set("earner", claim.EarnerLeaf.Earner).
		Set("rootIndex", claim.RootIndex)
	decoded, err := inv.Read(ctx, rc, a, "checkClaim", *claim)
	if err != nil {
		if !errorTypes.IsCallerError(err) {
			return nil, err
		}
		return inv.Finish(r.Set("valid", false).Set("reason", err.Error())), nil
	}
	valid, _ := decoded.(bool)
	return inv.Finish(r.Set("valid", valid)), nil
}

func processClaim(ctx context.Context, inv *Invocation) (*records.Record, error) {
	claim, err := claimParam(inv)
	if err != nil {
		return nil, err
	}
	recipient, err := inv.AddressOr("recipient", common.Address{})
	if err != nil {
		return nil, err
	}
	rc, a, err := rewardsCoordinatorContract(inv)
	if err != nil {
		return nil, err
	}
	claimer, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	if recipient == (common.Address{}) {
		recipient = claimer
	}
	outcome, err := inv.Send(ctx, rc, a, "processClaim", nil, *claim, recipient)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("claimer", claimer).
		Set("recipient", recipient)), nil
}
