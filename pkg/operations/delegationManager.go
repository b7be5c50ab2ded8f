package operations

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signatures"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	// withdrawalLogWindow bounds each eth_getLogs range while searching for a queued withdrawal.
	withdrawalLogWindow = 10_000
	// DefaultWithdrawalLookbackBlocks covers the slowest withdrawal delay with room to spare.
	DefaultWithdrawalLookbackBlocks = 2 * registry.WithdrawalDelayBlocks
)

type OperatorDetails struct {
	DeprecatedEarningsReceiver         common.Address `abi:"__deprecated_earningsReceiver"`
	DelegationApprover                 common.Address `abi:"delegationApprover"`
	DeprecatedStakerOptOutWindowBlocks uint32         `abi:"__deprecated_stakerOptOutWindowBlocks"`
}

type ScaledShares struct {
	ScaledShares *big.Int `abi:"scaledShares"`
}

// Withdrawal mirrors IDelegationManager.Withdrawal. Field order matches the ABI tuple.
type Withdrawal struct {
	Staker                 common.Address   `abi:"staker"`
	DelegatedTo            common.Address   `abi:"delegatedTo"`
	Withdrawer             common.Address   `abi:"withdrawer"`
	Nonce                  *big.Int         `abi:"nonce"`
	StartBlock             uint32           `abi:"startBlock"`
	Strategies             []common.Address `abi:"strategies"`
	ScaledSharesToWithdraw []ScaledShares   `abi:"scaledSharesToWithdraw"`
}

// withdrawalParam is the caller-facing shape of a withdrawal. Shares may be given as a flat
// scaledShares list or in the nested ABI form.
type withdrawalParam struct {
	Staker                 common.Address
	DelegatedTo            common.Address
	Withdrawer             common.Address
	Nonce                  *big.Int
	StartBlock             uint32
	Strategies             []common.Address
	ScaledShares           []*big.Int
	ScaledSharesToWithdraw []ScaledShares
}

func (p *withdrawalParam) toWithdrawal() (*Withdrawal, error) {
	w := &Withdrawal{
		Staker:                 p.Staker,
		DelegatedTo:            p.DelegatedTo,
		Withdrawer:             p.Withdrawer,
		Nonce:                  p.Nonce,
		StartBlock:             p.StartBlock,
		Strategies:             p.Strategies,
		ScaledSharesToWithdraw: p.ScaledSharesToWithdraw,
	}
	if w.Nonce == nil {
		w.Nonce = big.NewInt(0)
	}
	if len(w.ScaledSharesToWithdraw) == 0 {
		for _, s := range p.ScaledShares {
			w.ScaledSharesToWithdraw = append(w.ScaledSharesToWithdraw, ScaledShares{ScaledShares: s})
		}
	}
	if len(w.Strategies) == 0 {
		return nil, errorTypes.NewValidationError("withdrawal", "withdrawal.strategies is required and cannot be empty")
	}
	if len(w.Strategies) != len(w.ScaledSharesToWithdraw) {
		return nil, errorTypes.NewValidationError("withdrawal", "withdrawal strategies and shares must have the same length")
	}
	return w, nil
}

// toRecord renders the withdrawal with the flat share list callers supply.
func (w *Withdrawal) toRecord() *records.Record {
	shares := make([]*big.Int, 0, len(w.ScaledSharesToWithdraw))
	for _, s := range w.ScaledSharesToWithdraw {
		shares = append(shares, s.ScaledShares)
	}
	return records.New().
		Set("staker", w.Staker).
		Set("delegatedTo", w.DelegatedTo).
		Set("withdrawer", w.Withdrawer).
		Set("nonce", w.Nonce).
		Set("startBlock", w.StartBlock).
		Set("strategies", w.Strategies).
		Set("scaledShares", shares)
}

type QueuedWithdrawalParams struct {
	Strategies []common.Address `abi:"strategies"`
	Shares     []*big.Int       `abi:"shares"`
	Withdrawer common.Address   `abi:"withdrawer"`
}

// convertTuple converts an abi-decoded anonymous struct into T.
func convertTuple[T any](v any, method string) (out *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &errorTypes.DecodeError{Method: method, Err: fmt.Errorf("%v", r)}
		}
	}()
	if v == nil {
		return nil, &errorTypes.DecodeError{Method: method, Err: fmt.Errorf("empty result")}
	}
	converted, ok := abi.ConvertType(v, new(T)).(*T)
	if !ok {
		return nil, &errorTypes.DecodeError{Method: method, Err: fmt.Errorf("unexpected type %T", v)}
	}
	return converted, nil
}

func delegationManager(inv *Invocation) (common.Address, *abi.ABI, error) {
	addr, err := inv.ContractAddress(registry.Contract_DelegationManager)
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, contracts.MustGetAbi(registry.Contract_DelegationManager), nil
}

func getOperatorDetails(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	values, err := inv.ReadAll(ctx, []*contractCaller.CallWithAbi{
		{Target: dm, Abi: a, Method: "isOperator", Args: []any{operator}},
		{Target: dm, Abi: a, Method: "operatorDetails", Args: []any{operator}},
	})
	if err != nil {
		return nil, err
	}
	isOperator, _ := values[0].(bool)
	details, err := convertTuple[OperatorDetails](values[1], "operatorDetails")
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("operator", operator).
		Set("isOperator", isOperator).
		Set("delegationApprover", details.DelegationApprover).
		Set("earningsReceiver", details.DeprecatedEarningsReceiver)), nil
}

func getWithdrawableShares(ctx context.Context, inv *Invocation) (*records.Record, error) {
	staker, err := inv.Address("stakerAddress")
	if err != nil {
		return nil, err
	}
	strategies, err := inv.AddressList("strategies")
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, dm, a, "getWithdrawableShares", staker, strategies)
	if err != nil {
		return nil, err
	}
	withdrawable, err := decodedAt[[]*big.Int](decoded, 0, "getWithdrawableShares")
	if err != nil {
		return nil, err
	}
	deposit, err := decodedAt[[]*big.Int](decoded, 1, "getWithdrawableShares")
	if err != nil {
		return nil, err
	}
	if len(withdrawable) != len(strategies) || len(deposit) != len(strategies) {
		return nil, &errorTypes.DecodeError{Method: "getWithdrawableShares", Err: fmt.Errorf("expected %d entries", len(strategies))}
	}

	shares := make([]any, 0, len(strategies))
	for i, strategy := range strategies {
		shares = append(shares, records.New().
			Set("strategy", strategy).
			Set("withdrawableShares", withdrawable[i]).
			Set("withdrawableFormatted", numbers.FormatEther(withdrawable[i])).
			Set("depositShares", deposit[i]).
			Set("depositFormatted", numbers.FormatEther(deposit[i])))
	}
	return inv.Finish(records.New().
		Set("staker", staker).
		Set("shares", shares)), nil
}

func withdrawalFromParams(inv *Invocation) (*Withdrawal, error) {
	var p withdrawalParam
	if err := inv.Decode("withdrawal", &p); err != nil {
		return nil, err
	}
	return p.toWithdrawal()
}

func readWithdrawalRoot(ctx context.Context, inv *Invocation, w *Withdrawal) ([32]byte, error) {
	dm, a, err := delegationManager(inv)
	if err != nil {
		return [32]byte{}, err
	}
	decoded, err := inv.Read(ctx, dm, a, "calculateWithdrawalRoot", *w)
	if err != nil {
		return [32]byte{}, err
	}
	return decodedAt[[32]byte](decoded, 0, "calculateWithdrawalRoot")
}

func calculateWithdrawalRoot(ctx context.Context, inv *Invocation) (*records.Record, error) {
	w, err := withdrawalFromParams(inv)
	if err != nil {
		return nil, err
	}
	root, err := readWithdrawalRoot(ctx, inv, w)
	if err != nil {
		return nil, err
	}
	return inv.Finish(records.New().
		Set("withdrawalRoot", root).
		Set("withdrawal", w.toRecord())), nil
}

func registerAsOperator(ctx context.Context, inv *Invocation) (*records.Record, error) {
	approver, err := inv.AddressOr("delegationApprover", common.Address{})
	if err != nil {
		return nil, err
	}
	allocationDelay, err := inv.Uint64("allocationDelay", 1)
	if err != nil {
		return nil, err
	}
	if allocationDelay > uint64(^uint32(0)) {
		return nil, errorTypes.NewValidationError("allocationDelay", "allocationDelay is out of range for uint32")
	}
	metadataURI := inv.String("metadataURI", "")

	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	operator, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	details := OperatorDetails{
		DeprecatedEarningsReceiver: operator,
		DelegationApprover:         approver,
	}
	outcome, err := inv.Send(ctx, dm, a, "registerAsOperator", nil, details, uint32(allocationDelay), metadataURI)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("operator", operator).
		Set("delegationApprover", approver).
		Set("metadataURI", metadataURI)), nil
}

// approverSignature returns the caller's approver signature and salt, or an empty signature with a fresh salt.
func approverSignature(inv *Invocation) (signatures.ContractSignatureWithExpiry, [32]byte, error) {
	var salt [32]byte
	sig := signatures.EmptySignature()
	if inv.Has("approverSignature") {
		expiry, err := inv.OptionalParam("approverExpiry", Param_Uint256, big.NewInt(0))
		if err != nil {
			return signatures.ContractSignatureWithExpiry{}, salt, err
		}
		sig = &signatures.SignatureWithExpiry{
			Signature: inv.String("approverSignature", "0x"),
			Expiry:    expiry.(*big.Int),
		}
	}
	contractSig, err := sig.ToContract()
	if err != nil {
		return contractSig, salt, err
	}

	if inv.Has("approverSalt") {
		salt, err = inv.Bytes32("approverSalt")
		return contractSig, salt, err
	}
	generated, err := signatures.GenerateSalt()
	if err != nil {
		return contractSig, salt, err
	}
	salt, err = signatures.ParseSalt(generated)
	return contractSig, salt, err
}

func delegateTo(ctx context.Context, inv *Invocation) (*records.Record, error) {
	operator, err := inv.Address("operatorAddress")
	if err != nil {
		return nil, err
	}
	sig, salt, err := approverSignature(inv)
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	staker, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := inv.Send(ctx, dm, a, "delegateTo", nil, operator, sig, salt)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("staker", staker).
		Set("operator", operator)), nil
}

func queueWithdrawals(ctx context.Context, inv *Invocation) (*records.Record, error) {
	strategies, err := inv.AddressList("strategies")
	if err != nil {
		return nil, err
	}
	shares, err := inv.BigIntList("shares")
	if err != nil {
		return nil, err
	}
	if len(strategies) != len(shares) {
		return nil, errorTypes.NewValidationError("shares", "strategies and shares must have the same length")
	}
	for i, s := range shares {
		if s.Sign() <= 0 {
			return nil, errorTypes.NewValidationError("shares", "shares[%d] must be greater than zero", i)
		}
	}
	withdrawer, err := inv.AddressOr("withdrawer", common.Address{})
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	if withdrawer == (common.Address{}) {
		if withdrawer, err = inv.SignerAddress(ctx); err != nil {
			return nil, err
		}
	}

	params := []QueuedWithdrawalParams{{
		Strategies: strategies,
		Shares:     shares,
		Withdrawer: withdrawer,
	}}
	outcome, err := inv.Send(ctx, dm, a, "queueWithdrawals", nil, params)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("withdrawer", withdrawer).
		Set("strategies", strategies).
		Set("shares", shares).
		Set("estimatedCompletionBlocks", registry.WithdrawalDelayBlocks)), nil
}

// findQueuedWithdrawal searches WithdrawalQueued logs for root. A known startBlock is queried
// directly; otherwise the search walks back from the head in fixed windows.
func findQueuedWithdrawal(ctx context.Context, inv *Invocation, root [32]byte) (*Withdrawal, error) {
	client, err := inv.Client(ctx)
	if err != nil {
		return nil, err
	}
	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	event := a.Events["WithdrawalQueued"]

	match := func(from, to uint64) (*Withdrawal, error) {
		logs, err := client.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: []common.Address{dm},
			Topics:    [][]common.Hash{{event.ID}},
		})
		if err != nil {
			return nil, err
		}
		for _, lg := range logs {
			values, err := event.Inputs.Unpack(lg.Data)
			if err != nil || len(values) != 2 {
				inv.Logger.Sugar().Debugw("Skipping undecodable WithdrawalQueued log",
					zap.String("transactionHash", lg.TxHash.Hex()),
					zap.Error(err),
				)
				continue
			}
			logRoot, ok := values[0].([32]byte)
			if !ok || !bytes.Equal(logRoot[:], root[:]) {
				continue
			}
			return convertTuple[Withdrawal](values[1], "WithdrawalQueued")
		}
		return nil, nil
	}

	if inv.Has("startBlock") {
		start, err := inv.Uint64("startBlock", 0)
		if err != nil {
			return nil, err
		}
		w, err := match(start, start)
		if err != nil || w != nil {
			return w, err
		}
	} else {
		head, err := client.BlockNumber(ctx)
		if err != nil {
			return nil, err
		}
		lookback, err := inv.Uint64("lookbackBlocks", DefaultWithdrawalLookbackBlocks)
		if err != nil {
			return nil, err
		}
		floor := uint64(0)
		if head > lookback {
			floor = head - lookback
		}
		for to := head; ; {
			from := floor
			if to >= floor+withdrawalLogWindow {
				from = to - withdrawalLogWindow + 1
			}
			w, err := match(from, to)
			if err != nil || w != nil {
				return w, err
			}
			if from == floor {
				break
			}
			to = from - 1
		}
	}
	return nil, errorTypes.NewValidationError("withdrawalRoot", "No WithdrawalQueued event found for %s", common.Hash(root).Hex())
}

// withdrawalTokens resolves each strategy's underlying token. The beacon chain ETH strategy maps to the zero address.
func withdrawalTokens(ctx context.Context, inv *Invocation, strategies []common.Address) ([]common.Address, error) {
	beacon := common.HexToAddress(registry.BeaconChainETHStrategy)
	strategyAbi := contracts.MustGetAbi(contracts.Contract_Strategy)

	tokens := make([]common.Address, len(strategies))
	calls := make([]*contractCaller.CallWithAbi, 0, len(strategies))
	positions := make([]int, 0, len(strategies))
	for i, s := range strategies {
		if s == beacon {
			continue
		}
		calls = append(calls, &contractCaller.CallWithAbi{Target: s, Abi: strategyAbi, Method: "underlyingToken"})
		positions = append(positions, i)
	}
	values, err := inv.ReadAll(ctx, calls)
	if err != nil {
		return nil, err
	}
	for j, v := range values {
		token, ok := v.(common.Address)
		if !ok {
			return nil, &errorTypes.DecodeError{Method: "underlyingToken", Err: fmt.Errorf("unexpected type %T", v)}
		}
		tokens[positions[j]] = token
	}
	return tokens, nil
}

func completeQueuedWithdrawal(ctx context.Context, inv *Invocation) (*records.Record, error) {
	receiveAsTokens, err := inv.Bool("receiveAsTokens", true)
	if err != nil {
		return nil, err
	}
	var root [32]byte
	hasRoot := inv.Has("withdrawalRoot")
	if hasRoot {
		if root, err = inv.Bytes32("withdrawalRoot"); err != nil {
			return nil, err
		}
	}

	var w *Withdrawal
	switch {
	case inv.Has("withdrawal"):
		if w, err = withdrawalFromParams(inv); err != nil {
			return nil, err
		}
	case hasRoot:
		if w, err = findQueuedWithdrawal(ctx, inv, root); err != nil {
			return nil, err
		}
	default:
		return nil, errorTypes.NewValidationError("withdrawal", "Either withdrawal or withdrawalRoot is required")
	}

	computed, err := readWithdrawalRoot(ctx, inv, w)
	if err != nil {
		return nil, err
	}
	if hasRoot && computed != root {
		return nil, errorTypes.NewValidationError("withdrawalRoot",
			"Withdrawal does not match root: expected %s, calculated %s",
			common.Hash(root).Hex(), common.Hash(computed).Hex(),
		)
	}

	var tokens []common.Address
	if inv.Has("tokens") {
		if tokens, err = inv.AddressList("tokens"); err != nil {
			return nil, err
		}
		if len(tokens) != len(w.Strategies) {
			return nil, errorTypes.NewValidationError("tokens", "tokens must have one entry per withdrawal strategy")
		}
	} else if tokens, err = withdrawalTokens(ctx, inv, w.Strategies); err != nil {
		return nil, err
	}

	dm, a, err := delegationManager(inv)
	if err != nil {
		return nil, err
	}
	outcome, err := inv.Send(ctx, dm, a, "completeQueuedWithdrawal", nil, *w, tokens, receiveAsTokens)
	if err != nil {
		return nil, err
	}
	return inv.Finish(WriteRecord(outcome).
		Set("withdrawalRoot", computed).
		Set("receiveAsTokens", receiveAsTokens).
		Set("tokens", tokens)), nil
}
