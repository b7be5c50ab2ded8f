package operations

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signatures"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const defaultExpiryHours = 24

// expiryParam uses an explicit expiry timestamp, or now plus expiryHours.
func expiryParam(inv *Invocation) (*big.Int, error) {
	if inv.Has("expiry") {
		return inv.BigInt("expiry")
	}
	hours, err := inv.Uint64("expiryHours", defaultExpiryHours)
	if err != nil {
		return nil, err
	}
	if hours > 24*365*100 {
		return nil, errorTypes.NewValidationError("expiryHours", "expiryHours is too large")
	}
	return signatures.CalculateExpiry(int(hours)), nil
}

// saltParam uses the caller's salt or generates one.
func saltParam(inv *Invocation) (string, error) {
	if inv.Has("salt") {
		salt, err := inv.Bytes32("salt")
		if err != nil {
			return "", err
		}
		return hexutil.Encode(salt[:]), nil
	}
	return signatures.GenerateSalt()
}

// nonceParam uses the caller's nonce or reads it from the contract's nonce getter for the signer.
func nonceParam(ctx context.Context, inv *Invocation, role registry.ContractRole, method string, signer common.Address) (*big.Int, error) {
	if inv.Has("nonce") {
		return inv.BigInt("nonce")
	}
	target, err := inv.ContractAddress(role)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, target, contracts.MustGetAbi(role), method, signer)
	if err != nil {
		return nil, err
	}
	return decodedAt[*big.Int](decoded, 0, method)
}

func signMessage(ctx context.Context, inv *Invocation, role registry.ContractRole, types apitypes.Types, message apitypes.TypedDataMessage) (string, error) {
	verifying, err := inv.ContractAddress(role)
	if err != nil {
		return "", err
	}
	s, err := inv.Signer(ctx)
	if err != nil {
		return "", err
	}
	domain := signatures.CreateDomain(inv.ChainId, verifying)
	return signatures.SignTypedData(s, domain, types, message)
}

func signDelegationApproval(ctx context.Context, inv *Invocation) (*records.Record, error) {
	staker, err := inv.Address("stakerAddress")
	if err != nil {
		return nil, err
	}
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	salt, err := saltParam(inv)
	if err != nil {
		return nil, err
	}
	expiry, err := expiryParam(inv)
	if err != nil {
		return nil, err
	}
	approver, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	sig, err := signMessage(ctx, inv, registry.Contract_DelegationManager, signatures.DelegationApprovalTypes, apitypes.TypedDataMessage{
		"delegationApprover": approver.Hex(),
		"staker":             staker.Hex(),
		"operator":           operator.Hex(),
		"salt":               salt,
		"expiry":             expiry.String(),
	})
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("delegationApprover", approver).
		Set("staker", staker).
		Set("operator", operator).
		Set("salt", salt).
		Set("expiry", expiry).
		Set("signature", sig)), nil
}

func signStakerDelegation(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	expiry, err := expiryParam(inv)
	if err != nil {
		return nil, err
	}
	staker, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	nonce, err := nonceParam(ctx, inv, registry.Contract_DelegationManager, "stakerNonce", staker)
	if err != nil {
		return nil, err
	}
	sig, err := signMessage(ctx, inv, registry.Contract_DelegationManager, signatures.StakerDelegationTypes, apitypes.TypedDataMessage{
		"staker":   staker.Hex(),
		"operator": operator.Hex(),
		"nonce":    nonce.String(),
		"expiry":   expiry.String(),
	})
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("staker", staker).
		Set("operator", operator).
		Set("nonce", nonce).
		Set("expiry", expiry).
		Set("signature", sig)), nil
}

func signDeposit(ctx context.Context, inv *Invocation) (*records.Record, error) {
	strategy, err := inv.Address("strategyAddress")
	if err != nil {
		return nil, err
	}
	token, err := inv.Address("tokenAddress")
	if err != nil {
		return nil, err
	}
	amount, err := inv.BigInt("amount")
	if err != nil {
		return nil, err
	}
	expiry, err := expiryParam(inv)
	if err != nil {
		return nil, err
	}
	staker, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	nonce, err := nonceParam(ctx, inv, registry.Contract_StrategyManager, "nonces", staker)
	if err != nil {
		return nil, err
	}
	sig, err := signMessage(ctx, inv, registry.Contract_StrategyManager, signatures.DepositTypes, apitypes.TypedDataMessage{
		"staker":   staker.Hex(),
		"strategy": strategy.Hex(),
		"token":    token.Hex(),
		"amount":   amount.String(),
		"nonce":    nonce.String(),
		"expiry":   expiry.String(),
	})
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("staker", staker).
		Set("strategy", strategy).
		Set("token", token).
		Set("amount", amount).
		Set("nonce", nonce).
		Set("expiry", expiry).
		Set("signature", sig)), nil
}

func signOperatorAvsRegistration(ctx context.Context, inv *Invocation) (*records.Record, error) {
	avs, err := inv.Address("avsAddress")
	if err != nil {
		return nil, err
	}
	salt, err := saltParam(inv)
	if err != nil {
		return nil, err
	}
	expiry, err := expiryParam(inv)
	if err != nil {
		return nil, err
	}
	operator, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	sig, err := signMessage(ctx, inv, registry.Contract_AVSDirectory, signatures.OperatorAVSRegistrationTypes, apitypes.TypedDataMessage{
		"operator": operator.Hex(),
		"avs":      avs.Hex(),
		"salt":     salt,
		"expiry":   expiry.String(),
	})
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("operator", operator).
		Set("avs", avs).
		Set("salt", salt).
		Set("expiry", expiry).
		Set("signature", sig)), nil
}

func generateSalt(ctx context.Context, inv *Invocation) (*records.Record, error) {
	salt, err := signatures.GenerateSalt()
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().Set("salt", salt)), nil
}

func calculateExpiry(ctx context.Context, inv *Invocation) (*records.Record, error) {
	hours, err := inv.Uint64("expiryHours", defaultExpiryHours)
	if err != nil {
		return nil, err
	}
	expiry, err := expiryParam(inv)
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("expiryHours", hours).
		Set("expiry", expiry)), nil
}
