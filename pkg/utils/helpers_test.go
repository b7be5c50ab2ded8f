package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/stretchr/testify/assert"
)

const (
	validAddress          = "0x39053D51B77DC0d36036Fc1fCc8Cb819df8Ef37A"
	validAddressLowercase = "0x39053d51b77dc0d36036fc1fcc8cb819df8ef37a"
)

func Test_AddressValidation(t *testing.T) {
	t.Run("IsValidAddress", func(t *testing.T) {
		assert.True(t, IsValidAddress(validAddress))
		assert.True(t, IsValidAddress(validAddressLowercase))
		assert.True(t, IsValidAddress("0x"+strings.ToUpper(validAddressLowercase[2:])))
		assert.False(t, IsValidAddress("invalid"))
		assert.False(t, IsValidAddress("39053D51B77DC0d36036Fc1fCc8Cb819df8Ef37A"))
		assert.False(t, IsValidAddress("0x39053D51"))
		// mixed case with a broken checksum
		assert.False(t, IsValidAddress("0x39053d51B77DC0d36036Fc1fCc8Cb819df8Ef37A"))
	})
	t.Run("ValidateAddress returns the checksum form", func(t *testing.T) {
		res, err := ValidateAddress(validAddressLowercase, "")
		assert.Nil(t, err)
		assert.Equal(t, validAddress, res)
		assert.Len(t, res, 42)
		assert.True(t, strings.HasPrefix(res, "0x"))
	})
	t.Run("ValidateAddress errors", func(t *testing.T) {
		_, err := ValidateAddress("invalid", "")
		assert.ErrorContains(t, err, "Invalid address")

		_, err = ValidateAddress("", "")
		assert.ErrorContains(t, err, "address is required")

		_, err = ValidateAddress("invalid", "operatorAddress")
		assert.ErrorContains(t, err, "Invalid operatorAddress")

		var ve *errorTypes.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Equal(t, "operatorAddress", ve.Field)
	})
	t.Run("Normalization is idempotent", func(t *testing.T) {
		for _, a := range []string{validAddress, validAddressLowercase, NullEthereumAddressHex, "0xDFB5F6CE42AAA7830E94ECFCCAD411BEF4D4D5B6"} {
			n, err := ValidateAddress(a, "")
			assert.Nil(t, err)
			again, err := ValidateAddress(n, "")
			assert.Nil(t, err)
			assert.Equal(t, n, again)
			assert.Len(t, n, 42)
		}
	})
	t.Run("ValidateAddresses", func(t *testing.T) {
		out, err := ValidateAddresses([]string{validAddressLowercase}, "strategies")
		assert.Nil(t, err)
		assert.Equal(t, []string{validAddress}, out)

		_, err = ValidateAddresses([]string{validAddress, "bad"}, "strategies")
		assert.ErrorContains(t, err, "Invalid strategies[1]")

		_, err = ValidateAddresses(nil, "strategies")
		assert.ErrorContains(t, err, "cannot be empty")
	})
	t.Run("ToChecksumAddress", func(t *testing.T) {
		res, err := ToChecksumAddress(validAddressLowercase)
		assert.Nil(t, err)
		assert.Equal(t, validAddress, res)

		_, err = ToChecksumAddress("invalid")
		assert.ErrorContains(t, err, "Invalid Ethereum address")
	})
	t.Run("AreAddressesEqual and IsZeroAddress", func(t *testing.T) {
		assert.True(t, AreAddressesEqual(validAddressLowercase, validAddress))
		assert.False(t, AreAddressesEqual(validAddress, NullEthereumAddressHex))
		assert.False(t, AreAddressesEqual("bad", "bad"))

		assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
		assert.False(t, IsZeroAddress(validAddress))
	})
}
