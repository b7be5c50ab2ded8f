package transactions

import (
	"errors"
	"testing"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

type dataError struct {
	msg  string
	data string
}

func (e *dataError) Error() string          { return e.msg }
func (e *dataError) ErrorData() interface{} { return e.data }

func encodeRevert(reason string) string {
	strType, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: strType}}.Pack(reason)
	return hexutil.Encode(append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...))
}

func Test_ParseTransactionError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "Unknown transaction error"},
		{"insufficient funds", errors.New("insufficient funds for gas * price + value: balance 0"), "Insufficient funds for gas + value"},
		{"nonce", errors.New("nonce too low: next nonce 5, tx nonce 4"), "Transaction nonce has already been used"},
		{"replacement", errors.New("replacement transaction underpriced"), "Replacement transaction underpriced"},
		{"rejected", errors.New("user rejected transaction"), "Transaction was rejected"},
		{"gas estimation without reason", &errorTypes.GasEstimationError{Err: errors.New("gas required exceeds allowance (30000000)")}, "Transaction would revert - check your parameters"},
		{"gas estimation with reason", &errorTypes.GasEstimationError{Reason: "Pausable: index is paused", Err: errors.New("execution reverted")}, "Pausable: index is paused"},
		{"revert reason in message", errors.New("execution reverted: DelegationManager: staker is already delegated"), "Transaction would revert: DelegationManager: staker is already delegated"},
		{"revert reason in data", &dataError{msg: "execution reverted", data: encodeRevert("Ownable: caller is not the owner")}, "Transaction would revert: Ownable: caller is not the owner"},
		{"raw message", errors.New("connection refused"), "connection refused"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, ParseTransactionError(c.err))
		})
	}
}

func Test_ClassifyTransactionError(t *testing.T) {
	assert.Equal(t, ErrorCode_InsufficientFunds, ClassifyTransactionError(errors.New("INSUFFICIENT FUNDS for transfer")))
	assert.Equal(t, ErrorCode_UnpredictableGasLimit, ClassifyTransactionError(&errorTypes.GasEstimationError{}))
	assert.Equal(t, ErrorCode_Unknown, ClassifyTransactionError(errors.New("boom")))
}
