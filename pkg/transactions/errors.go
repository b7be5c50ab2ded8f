package transactions

import (
	"errors"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

type ErrorCode string

const (
	ErrorCode_InsufficientFunds      ErrorCode = "INSUFFICIENT_FUNDS"
	ErrorCode_NonceExpired           ErrorCode = "NONCE_EXPIRED"
	ErrorCode_ReplacementUnderpriced ErrorCode = "REPLACEMENT_UNDERPRICED"
	ErrorCode_UnpredictableGasLimit  ErrorCode = "UNPREDICTABLE_GAS_LIMIT"
	ErrorCode_ActionRejected         ErrorCode = "ACTION_REJECTED"
	ErrorCode_Unknown                ErrorCode = ""
)

var codeFragments = []struct {
	code      ErrorCode
	fragments []string
}{
	{ErrorCode_InsufficientFunds, []string{"insufficient funds"}},
	{ErrorCode_NonceExpired, []string{"nonce too low", "nonce has already been used", "nonce expired"}},
	{ErrorCode_ReplacementUnderpriced, []string{"replacement transaction underpriced", "replacement fee too low"}},
	{ErrorCode_UnpredictableGasLimit, []string{"cannot estimate gas", "gas required exceeds allowance", "unpredictable gas limit"}},
	{ErrorCode_ActionRejected, []string{"user rejected", "user denied", "action rejected"}},
}

// ClassifyTransactionError maps a node or client error onto a well-known code.
func ClassifyTransactionError(err error) ErrorCode {
	if err == nil {
		return ErrorCode_Unknown
	}
	var gasErr *errorTypes.GasEstimationError
	if errors.As(err, &gasErr) {
		return ErrorCode_UnpredictableGasLimit
	}
	msg := strings.ToLower(err.Error())
	for _, c := range codeFragments {
		for _, f := range c.fragments {
			if strings.Contains(msg, f) {
				return c.code
			}
		}
	}
	return ErrorCode_Unknown
}

// ParseTransactionError renders err as a user-facing message.
func ParseTransactionError(err error) string {
	if err == nil {
		return "Unknown transaction error"
	}
	reason := RevertReason(err)
	switch ClassifyTransactionError(err) {
	case ErrorCode_InsufficientFunds:
		return "Insufficient funds for gas + value"
	case ErrorCode_NonceExpired:
		return "Transaction nonce has already been used"
	case ErrorCode_ReplacementUnderpriced:
		return "Replacement transaction underpriced"
	case ErrorCode_UnpredictableGasLimit:
		if reason != "" {
			return reason
		}
		return "Transaction would revert - check your parameters"
	case ErrorCode_ActionRejected:
		return "Transaction was rejected"
	}
	if reason != "" {
		return "Transaction would revert: " + reason
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown transaction error"
}

const revertPrefix = "execution reverted: "

// RevertReason extracts a revert reason from an RPC error, first from its Error(string) payload and
// then from the "execution reverted: <reason>" message form. Empty when none is present.
func RevertReason(err error) string {
	if err == nil {
		return ""
	}
	var gasErr *errorTypes.GasEstimationError
	if errors.As(err, &gasErr) && gasErr.Reason != "" {
		return gasErr.Reason
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(s); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return reason
				}
			}
		}
	}
	msg := err.Error()
	if idx := strings.Index(msg, revertPrefix); idx >= 0 {
		return strings.TrimSpace(msg[idx+len(revertPrefix):])
	}
	return ""
}
