package operations

import (
	"context"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signatures"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

func avsDirectory(inv *Invocation) (common.Address, *abi.ABI, error) {
	addr, err := inv.ContractAddress(registry.Contract_AVSDirectory)
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, contracts.MustGetAbi(registry.Contract_AVSDirectory), nil
}

func getOperatorAvsStatus(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	avs, err := inv.Address("avsAddress")
	if err != nil {
		return nil, err
	}
	dir, a, err := avsDirectory(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, dir, a, "avsOperatorStatus", avs, operator)
	if err != nil {
		return nil, err
	}
	status, err := decodedAt[uint8](decoded, 0, "avsOperatorStatus")
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("operator", operator).
		Set("avs", avs).
		Set("status", status)), nil
}

// operatorSignature returns the caller's signature, or an empty one with a zero salt that never expires.
func operatorSignature(inv *Invocation) (signatures.ContractSignatureWithSaltAndExpiry, error) {
	out := signatures.ContractSignatureWithSaltAndExpiry{
		Signature: []byte{},
		Expiry:    math.MaxBig256,
	}
	if !inv.Has("operatorSignature") {
		return out, nil
	}
	sig, err := inv.Bytes("operatorSignature")
	if err != nil {
		return out, err
	}
	out.Signature = sig
	if inv.Has("salt") {
		if out.Salt, err = inv.Bytes32("salt"); err != nil {
			return out, err
		}
	}
	if inv.Has("expiry") {
		if out.Expiry, err = inv.BigInt("expiry"); err != nil {
			return out, err
		}
	}
	return out, nil
}

func registerOperatorToAvs(ctx context.Context, inv *Invocation) (*records.Record, error) {
	avs, err := inv.Address("avsAddress")
	if err != nil {
		return nil, err
	}
	sig, err := operatorSignature(inv)
	if err != nil {
		return nil, err
	}
	dir, a, err := avsDirectory(inv)
	if err != nil {
		return nil, err
	}
	operator, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := inv.Send(ctx, dir, a, "registerOperatorToAVS", nil, operator, sig)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("operator", operator).
		Set("avs", avs)), nil
}

// deregisterOperatorFromAvs removes operatorAddress, or the signer when it is absent.
func deregisterOperatorFromAvs(ctx context.Context, inv *Invocation) (*records.Record, error) {
	avs, err := inv.Address("avsAddress")
	if err != nil {
		return nil, err
	}
	operator, err := inv.AddressOr("operatorAddress", common.Address{})
	if err != nil {
		return nil, err
	}
	dir, a, err := avsDirectory(inv)
	if err != nil {
		return nil, err
	}
	if operator == (common.Address{}) {
		if operator, err = inv.SignerAddress(ctx); err != nil {
			return nil, err
		}
	}
	outcome, err := inv.Send(ctx, dir, a, "deregisterOperatorFromAVS", nil, operator)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("operator", operator).
		Set("avs", avs)), nil
}
