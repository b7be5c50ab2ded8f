package registry

import (
	"errors"
	"testing"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func Test_Registry(t *testing.T) {
	t.Run("Should resolve mainnet addresses and chain id", func(t *testing.T) {
		addrs, err := ResolveAddresses("mainnet")
		assert.Nil(t, err)
		assert.Equal(t, "0x39053D51B77DC0d36036Fc1fCc8Cb819df8Ef37A", addrs.DelegationManager)

		chainId, err := ResolveChainId("mainnet")
		assert.Nil(t, err)
		assert.Equal(t, uint64(1), chainId)
	})
	t.Run("Should treat testnet as holesky", func(t *testing.T) {
		chainId, err := ResolveChainId("testnet")
		assert.Nil(t, err)
		assert.Equal(t, uint64(17000), chainId)

		addrs, err := ResolveAddresses("testnet")
		assert.Nil(t, err)
		assert.Equal(t, "0xA44151489861Fe9e3055d95adC98FbD462B948e7", addrs.DelegationManager)
	})
	t.Run("Should fail for an unknown network", func(t *testing.T) {
		_, err := ResolveAddresses("sepolia")
		var une *errorTypes.UnsupportedNetworkError
		assert.True(t, errors.As(err, &une))

		_, err = ResolveChainId("")
		assert.True(t, errors.As(err, &une))
	})
	t.Run("Every role resolves to a valid address on every network", func(t *testing.T) {
		for _, n := range SupportedNetworks() {
			addrs, err := ResolveAddresses(string(n))
			assert.Nil(t, err)
			for _, role := range addrs.Roles() {
				addr := addrs.Get(role)
				assert.NotEmpty(t, addr, "%s %s", n, role)
				assert.True(t, common.IsHexAddress(addr), "%s %s", n, role)
			}
		}
	})
	t.Run("Should find a catalogued strategy case-insensitively", func(t *testing.T) {
		s := FindStrategyByAddress("mainnet", "0x93c4b944d05dfe6df7645a86cd2206016c51564d")
		assert.NotNil(t, s)
		assert.Equal(t, "stETH", s.Symbol)

		assert.Nil(t, FindStrategyByAddress("holesky", "0x93c4b944d05dfe6df7645a86cd2206016c51564d"))
	})
}
