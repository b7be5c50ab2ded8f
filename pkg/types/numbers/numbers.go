package numbers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EtherDecimals = 18
	GweiDecimals  = 9
)

var gwei = big.NewInt(1_000_000_000)

// FormatUnits renders an integer amount as a decimal string with `decimals` places.
// The result always carries a fractional part, e.g. "1.0" or "0.0".
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		value = big.NewInt(0)
	}
	s := decimal.NewFromBigInt(value, -int32(decimals)).String()
	if !strings.Contains(s, ".") {
		s = s + ".0"
	}
	return s
}

// ParseUnits converts a decimal string into an integer amount with `decimals` places.
// Values with more significant fractional digits than `decimals` are rejected.
func ParseUnits(value string, decimals int) (*big.Int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("invalid decimal value: empty string")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal value '%s': %v", value, err)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("too many decimals for '%s' (max %d)", value, decimals)
	}
	return shifted.BigInt(), nil
}

func FormatEther(value *big.Int) string {
	return FormatUnits(value, EtherDecimals)
}

func ParseEther(value string) (*big.Int, error) {
	return ParseUnits(value, EtherDecimals)
}

func GweiToWei(v *big.Int) *big.Int {
	return new(big.Int).Mul(v, gwei)
}

// ToBigInt accepts the loosely typed values that arrive from JSON params.
// Decimal strings are truncated at the decimal point.
func ToBigInt(v any) (*big.Int, error) {
	switch t := v.(type) {
	case *big.Int:
		return new(big.Int).Set(t), nil
	case big.Int:
		return new(big.Int).Set(&t), nil
	case int:
		return big.NewInt(int64(t)), nil
	case int32:
		return big.NewInt(int64(t)), nil
	case int64:
		return big.NewInt(t), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(t)), nil
	case uint64:
		return new(big.Int).SetUint64(t), nil
	case float64:
		d := decimal.NewFromFloat(t).Truncate(0)
		return d.BigInt(), nil
	case json.Number:
		return ToBigInt(t.String())
	case string:
		s := strings.TrimSpace(t)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			n, ok := new(big.Int).SetString(s[2:], 16)
			if !ok {
				return nil, fmt.Errorf("invalid hex integer '%s'", t)
			}
			return n, nil
		}
		if whole, _, found := strings.Cut(s, "."); found {
			s = whole
			if s == "" || s == "-" {
				s = "0"
			}
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer '%s'", t)
		}
		return n, nil
	}
	return nil, fmt.Errorf("unsupported integer type %T", v)
}

// FormatBigInt renders a human amount rounded to `precision` places with an optional symbol.
func FormatBigInt(value *big.Int, decimals int, precision int, symbol string) string {
	d := decimal.NewFromBigInt(value, -int32(decimals))
	var out string
	threshold := decimal.New(1, -int32(precision))
	if !d.IsZero() && d.Abs().LessThan(threshold) {
		f, _ := new(big.Float).SetString(d.String())
		out = f.Text('e', precision)
	} else {
		out = d.StringFixed(int32(precision))
		if strings.Contains(out, ".") {
			out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
		}
	}
	if symbol != "" {
		return fmt.Sprintf("%s %s", out, symbol)
	}
	return out
}
