package numbers

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad number " + s)
	}
	return n
}

func Test_Numbers(t *testing.T) {
	t.Run("FormatUnits", func(t *testing.T) {
		assert.Equal(t, "1.0", FormatUnits(mustBig("1000000000000000000"), 18))
		assert.Equal(t, "1.0", FormatUnits(mustBig("1000000"), 6))
		assert.Equal(t, "0.0", FormatUnits(big.NewInt(0), 18))
		assert.Equal(t, "1000000.0", FormatUnits(mustBig("1000000000000000000000000"), 18))
		assert.Equal(t, "1.5", FormatUnits(mustBig("1500000000000000000"), 18))
		assert.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), 18))
		assert.Equal(t, "-2.25", FormatUnits(mustBig("-2250000"), 6))
		assert.Equal(t, "0.0", FormatUnits(nil, 18))
	})
	t.Run("ParseUnits", func(t *testing.T) {
		v, err := ParseUnits("1.0", 18)
		assert.Nil(t, err)
		assert.Equal(t, "1000000000000000000", v.String())

		v, err = ParseUnits("1.0", 6)
		assert.Nil(t, err)
		assert.Equal(t, "1000000", v.String())

		v, err = ParseUnits("1.5", 18)
		assert.Nil(t, err)
		assert.Equal(t, "1500000000000000000", v.String())

		_, err = ParseUnits("1.0000001", 6)
		assert.NotNil(t, err)

		_, err = ParseUnits("abc", 18)
		assert.NotNil(t, err)

		_, err = ParseUnits("", 18)
		assert.NotNil(t, err)
	})
	t.Run("ParseUnits inverts FormatUnits", func(t *testing.T) {
		values := []string{"0", "1", "999", "1000000000000000000", "123456789012345678901234567890", "115792089237316195423570985008687907853269984665640564039457584007913129639935"}
		for _, d := range []int{0, 1, 6, 8, 18, 27} {
			for _, s := range values {
				v := mustBig(s)
				back, err := ParseUnits(FormatUnits(v, d), d)
				assert.Nil(t, err)
				assert.Equal(t, 0, v.Cmp(back), "value %s decimals %d", s, d)
			}
		}
	})
	t.Run("Ether helpers", func(t *testing.T) {
		assert.Equal(t, "1.0", FormatEther(mustBig("1000000000000000000")))
		v, err := ParseEther("32")
		assert.Nil(t, err)
		assert.Equal(t, "32000000000000000000", v.String())

		assert.Equal(t, "5000000000", GweiToWei(big.NewInt(5)).String())
	})
	t.Run("ToBigInt", func(t *testing.T) {
		for input, expected := range map[any]string{
			"12345678901234567890": "12345678901234567890",
			"0x10":                 "16",
			"1.9":                  "1",
			float64(42):            "42",
			uint64(7):              "7",
		} {
			v, err := ToBigInt(input)
			assert.Nil(t, err)
			assert.Equal(t, expected, v.String())
		}
		_, err := ToBigInt("nope")
		assert.NotNil(t, err)
		_, err = ToBigInt(true)
		assert.NotNil(t, err)
	})
	t.Run("FormatBigInt", func(t *testing.T) {
		assert.Equal(t, "1.5 ETH", FormatBigInt(mustBig("1500000000000000000"), 18, 6, "ETH"))
		assert.Equal(t, "2", FormatBigInt(mustBig("2000000"), 6, 4, ""))
		assert.Equal(t, "12.5 gwei", FormatBigInt(mustBig("12500000000"), GweiDecimals, 2, "gwei"))
	})
}
