package operations

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"go.uber.org/zap"
)

const (
	AmountUnit_Wei   = "wei"
	AmountUnit_Token = "token"
)

// decodedAt extracts the typed return value at index from a decoded call result.
func decodedAt[T any](decoded any, index int, method string) (T, error) {
	var zero T
	v := pickOutput(decoded, index)
	t, ok := v.(T)
	if !ok {
		return zero, &errorTypes.DecodeError{
			Method: method,
			Err:    fmt.Errorf("unexpected return type %T at index %d", v, index),
		}
	}
	return t, nil
}

func strategyLabel(inv *Invocation, strategy common.Address) (string, string) {
	if info := registry.FindStrategyByAddress(string(inv.Network), strategy.Hex()); info != nil {
		return info.Name, info.Symbol
	}
	return "Unknown Strategy", "UNKNOWN"
}

func getStakerDeposits(ctx context.Context, inv *Invocation) (*records.Record, error) {
	staker, err := inv.Address("stakerAddress")
	if err != nil {
		return nil, err
	}
	sm, err := inv.ContractAddress(registry.Contract_StrategyManager)
	if err != nil {
		return nil, err
	}
	decoded, err := inv.Read(ctx, sm, contracts.MustGetAbi(registry.Contract_StrategyManager), "getDeposits", staker)
	if err != nil {
		return nil, err
	}
	strategies, err := decodedAt[[]common.Address](decoded, 0, "getDeposits")
	if err != nil {
		return nil, err
	}
	shares, err := decodedAt[[]*big.Int](decoded, 1, "getDeposits")
	if err != nil {
		return nil, err
	}

	deposits := make([]any, 0, len(strategies))
	for i, strategy := range strategies {
		name, symbol := strategyLabel(inv, strategy)
		amount := big.NewInt(0)
		if i < len(shares) {
			amount = shares[i]
		}
		deposits = append(deposits, records.New().
			Set("strategy", strategy).
			Set("name", name).
			Set("symbol", symbol).
			Set("shares", amount).
			Set("sharesFormatted", numbers.FormatEther(amount)))
	}

	return inv.Finish(records.New().
		Set("staker", staker).
		Set("network", string(inv.Network)).
		Set("totalStrategies", len(strategies)).
		Set("deposits", deposits)), nil
}

// resolveDepositAmount reads "amount" in base units, or in whole tokens when amountUnit is "token".
func resolveDepositAmount(ctx context.Context, inv *Invocation, token common.Address) (*big.Int, error) {
	raw, ok := inv.params.GetParameter("amount")
	if !ok {
		return nil, errorTypes.NewValidationError("amount", "amount is required")
	}
	unit := strings.ToLower(inv.String("amountUnit", AmountUnit_Wei))

	var amount *big.Int
	switch unit {
	case AmountUnit_Wei:
		n, err := toBigInt(raw, "amount")
		if err != nil {
			return nil, err
		}
		amount = n
	case AmountUnit_Token:
		decoded, err := inv.Read(ctx, token, contracts.MustGetAbi(contracts.Contract_ERC20), "decimals")
		if err != nil {
			return nil, err
		}
		decimals, err := decodedAt[uint8](decoded, 0, "decimals")
		if err != nil {
			return nil, err
		}
		n, err := numbers.ParseUnits(fmt.Sprint(raw), int(decimals))
		if err != nil {
			return nil, errorTypes.NewValidationError("amount", "Invalid amount: %v", err)
		}
		amount = n
	default:
		return nil, errorTypes.NewValidationError("amountUnit", "Invalid amountUnit: %s", unit)
	}
	if amount.Sign() <= 0 {
		return nil, errorTypes.NewValidationError("amount", "amount must be greater than zero")
	}
	return amount, nil
}

// depositIntoStrategy approves the StrategyManager for MaxUint256 when the allowance is short,
// waits for that receipt, then deposits.
func depositIntoStrategy(ctx context.Context, inv *Invocation) (*records.Record, error) {
	strategy, err := inv.Address("strategyAddress")
	if err != nil {
		return nil, err
	}
	token, err := inv.Address("tokenAddress")
	if err != nil {
		return nil, err
	}
	approveFirst, err := inv.Bool("approveFirst", true)
	if err != nil {
		return nil, err
	}
	sm, err := inv.ContractAddress(registry.Contract_StrategyManager)
	if err != nil {
		return nil, err
	}
	amount, err := resolveDepositAmount(ctx, inv, token)
	if err != nil {
		return nil, err
	}
	depositor, err := inv.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}

	erc20 := contracts.MustGetAbi(contracts.Contract_ERC20)
	if approveFirst {
		decoded, err := inv.Read(ctx, token, erc20, "allowance", depositor, sm)
		if err != nil {
			return nil, err
		}
		allowance, err := decodedAt[*big.Int](decoded, 0, "allowance")
		if err != nil {
			return nil, err
		}
		if allowance.Cmp(amount) < 0 {
			inv.Logger.Sugar().Infow("Approving StrategyManager",
				zap.String("token", token.Hex()),
				zap.String("allowance", allowance.String()),
			)
			if _, err := inv.Send(ctx, token, erc20, "approve", nil, sm, math.MaxBig256); err != nil {
				return nil, err
			}
		}
	}

	outcome, err := inv.Send(ctx, sm, contracts.MustGetAbi(registry.Contract_StrategyManager), "depositIntoStrategy", nil, strategy, token, amount)
	if err != nil {
		return nil, err
	}
	name, _ := strategyLabel(inv, strategy)
	r := WriteRecord(outcome).
		Set("strategy", strategy).
		Set("strategyName", name).
		Set("token", token).
		Set("amount", inv.String("amount", "")).
		Set("amountWei", amount).
		Set("depositor", depositor)
	return inv.Finish(r), nil
}
