package contracts

import (
	"testing"

	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
)

func Test_Contracts(t *testing.T) {
	t.Run("Every abi parses", func(t *testing.T) {
		for _, role := range Roles() {
			a, err := GetAbi(role)
			assert.Nil(t, err, role)
			assert.NotNil(t, a, role)
		}
	})
	t.Run("Should expose the methods and events in use", func(t *testing.T) {
		dm := MustGetAbi(registry.Contract_DelegationManager)
		for _, m := range []string{"delegatedTo", "isOperator", "operatorDetails", "queueWithdrawals", "completeQueuedWithdrawal", "calculateWithdrawalRoot", "getWithdrawableShares"} {
			_, ok := dm.Methods[m]
			assert.True(t, ok, m)
		}
		for _, e := range []string{"OperatorRegistered", "StakerDelegated", "WithdrawalQueued", "WithdrawalCompleted"} {
			_, ok := dm.Events[e]
			assert.True(t, ok, e)
		}

		mc := MustGetAbi(registry.Contract_Multicall3)
		assert.Equal(t, "0x82ad56cb", hexutil.Encode(mc.Methods["aggregate3"].ID))

		erc := MustGetAbi(Contract_ERC20)
		assert.Equal(t, "0x095ea7b3", hexutil.Encode(erc.Methods["approve"].ID))
	})
	t.Run("Unknown role fails", func(t *testing.T) {
		_, err := GetAbi("Nope")
		assert.NotNil(t, err)
	})
	t.Run("Instance contracts", func(t *testing.T) {
		assert.True(t, IsInstanceContract(Contract_Strategy))
		assert.False(t, IsInstanceContract(registry.Contract_StrategyManager))
	})
}
