package operations

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var weiPerEther = big.NewInt(1_000_000_000_000_000_000)

const (
	validatorPubkeyLength    = 48
	validatorSignatureLength = 96
)

func eigenPodManager(inv *Invocation) (common.Address, *abi.ABI, error) {
	addr, err := inv.ContractAddress(registry.Contract_EigenPodManager)
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, contracts.MustGetAbi(registry.Contract_EigenPodManager), nil
}

// podOwnerParam accepts ownerAddress or podOwnerAddress.
func podOwnerParam(inv *Invocation) (common.Address, error) {
	if inv.Has("ownerAddress") {
		return inv.Address("ownerAddress")
	}
	return inv.Address("podOwnerAddress")
}

func getEigenPod(ctx context.Context, inv *Invocation) (*records.Record, error) {
	owner, err := podOwnerParam(inv)
	if err != nil {
		return nil, err
	}
	epm, a, err := eigenPodManager(inv)
	if err != nil {
		return nil, err
	}
	values, err := inv.ReadAll(ctx, []*contractCaller.CallWithAbi{
		{Target: epm, Abi: a, Method: "ownerToPod", Args: []any{owner}},
		{Target: epm, Abi: a, Method: "hasPod", Args: []any{owner}},
	})
	if err != nil {
		return nil, err
	}
	pod, _ := values[0].(common.Address)
	hasPod, _ := values[1].(bool)
	return inv.Finish(records.New().
		Set("podOwner", owner).
		Set("eigenPod", pod).
		Set("hasPod", hasPod).
		Set("isPodDeployed", pod != (common.Address{}))), nil
}

// getPodOwnerShares reports the signed share balance; the formatted value is the magnitude.
func getPodOwnerShares(ctx context.Context, inv *Invocation) (*records.Record, error) {
	owner, err := podOwnerParam(inv)
	if err != nil {
		return nil, err
	}
	epm, a, err := eigenPodManager(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, epm, a, "podOwnerDepositShares", owner)
	if err != nil {
		return nil, err
	}
	shares, err := decodedAt[*big.Int](decoded, 0, "podOwnerDepositShares")
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("podOwner", owner).
		Set("shares", shares).
		Set("sharesFormatted", numbers.FormatEther(new(big.Int).Abs(shares))).
		Set("isNegative", shares.Sign() < 0)), nil
}

func createPod(ctx context.Context, inv *Invocation) (*records.Record, error) {
	epm, a, err := eigenPodManager(inv)
	if err != nil {
		return nil, err
	}
	owner, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := inv.Send(ctx, epm, a, "createPod", nil)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, epm, a, "ownerToPod", owner)
	if err != nil {
		return nil, err
	}
	pod, err := decodedAt[common.Address](decoded, 0, "ownerToPod")
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("podOwner", owner).
		Set("eigenPod", pod)), nil
}

func stake(ctx context.Context, inv *Invocation) (*records.Record, error) {
	pubkey, err := inv.Bytes("pubkey")
	if err != nil {
		return nil, err
	}
	if len(pubkey) != validatorPubkeyLength {
		return nil, errorTypes.NewValidationError("pubkey", "pubkey must be %d bytes", validatorPubkeyLength)
	}
	signature, err := inv.Bytes("signature")
	if err != nil {
		return nil, err
	}
	if len(signature) != validatorSignatureLength {
		return nil, errorTypes.NewValidationError("signature", "signature must be %d bytes", validatorSignatureLength)
	}
	depositDataRoot, err := inv.Bytes32("depositDataRoot")
	if err != nil {
		return nil, err
	}
	epm, a, err := eigenPodManager(inv)
	if err != nil {
		return nil, err
	}
	outcome, err := inv.Send(ctx, epm, a, "stake", inv.Descriptor.Value, pubkey, signature, depositDataRoot)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("depositAmount", new(big.Int).Quo(inv.Descriptor.Value, weiPerEther)).
		Set("pubkey", pubkey)), nil
}
