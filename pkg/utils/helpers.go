package utils

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/common"
)

var (
	NullEthereumAddress    = "0000000000000000000000000000000000000000"
	NullEthereumAddressHex = fmt.Sprintf("0x%s", NullEthereumAddress)

	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// IsValidAddress accepts 0x-prefixed addresses in all-lower, all-upper or correct checksum case.
func IsValidAddress(address string) bool {
	if !addressPattern.MatchString(address) {
		return false
	}
	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(address).Hex() == address
}

func ToChecksumAddress(address string) (string, error) {
	if !IsValidAddress(address) {
		return "", errorTypes.NewValidationError("address", "Invalid Ethereum address: %s", address)
	}
	return common.HexToAddress(address).Hex(), nil
}

// ValidateAddress checks presence and format, returning the checksummed form.
func ValidateAddress(address string, fieldName string) (string, error) {
	if fieldName == "" {
		fieldName = "address"
	}
	if strings.TrimSpace(address) == "" {
		return "", errorTypes.NewValidationError(fieldName, "%s is required", fieldName)
	}
	if !IsValidAddress(address) {
		return "", errorTypes.NewValidationError(fieldName, "Invalid %s: %s", fieldName, address)
	}
	return common.HexToAddress(address).Hex(), nil
}

func ValidateAddresses(addresses []string, fieldName string) ([]string, error) {
	if fieldName == "" {
		fieldName = "addresses"
	}
	if len(addresses) == 0 {
		return nil, errorTypes.NewValidationError(fieldName, "%s array is required and cannot be empty", fieldName)
	}
	out := make([]string, 0, len(addresses))
	for i, a := range addresses {
		v, err := ValidateAddress(a, fmt.Sprintf("%s[%d]", fieldName, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// AreAddressesEqual compares case-insensitively; malformed input is never equal.
func AreAddressesEqual(a, b string) bool {
	if !IsValidAddress(a) || !IsValidAddress(b) {
		return false
	}
	return strings.EqualFold(a, b)
}

func IsZeroAddress(address string) bool {
	return AreAddressesEqual(address, NullEthereumAddressHex)
}

func ConvertBytesToString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func SnakeCase(s string) string {
	notSnake := regexp.MustCompile(`[_-]`)
	return notSnake.ReplaceAllString(s, "_")
}
