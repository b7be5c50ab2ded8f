package operations

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/Layr-Labs/eigenops/pkg/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mitchellh/mapstructure"
)

var (
	bigIntType  = reflect.TypeOf(big.Int{})
	bigPtrType  = reflect.TypeOf(&big.Int{})
	addressType = reflect.TypeOf(common.Address{})
	bytes32Type = reflect.TypeOf([32]byte{})
	hashType    = reflect.TypeOf(common.Hash{})
	bytesType   = reflect.TypeOf([]byte{})
)

// toList accepts a slice, a JSON array string or a comma-separated string.
func toList(v any) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return []any{}, nil
		}
		if strings.HasPrefix(s, "[") {
			var out []any
			if err := json.Unmarshal([]byte(s), &out); err != nil {
				return nil, err
			}
			return out, nil
		}
		parts := strings.Split(s, ",")
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list, got %T", v)
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(t))
	case float64:
		return t != 0, nil
	case json.Number:
		return t.String() != "0", nil
	}
	return false, fmt.Errorf("expected a boolean, got %T", v)
}

func toAddress(v any, field string) (common.Address, error) {
	switch t := v.(type) {
	case common.Address:
		return t, nil
	case string:
		checksummed, err := utils.ValidateAddress(t, field)
		if err != nil {
			return common.Address{}, err
		}
		return common.HexToAddress(checksummed), nil
	}
	return common.Address{}, errorTypes.NewValidationError(field, "Invalid %s: %v", field, v)
}

func toBytes32(v any, field string) ([32]byte, error) {
	var out [32]byte
	switch t := v.(type) {
	case [32]byte:
		return t, nil
	case common.Hash:
		return t, nil
	case string:
		b, err := hexutil.Decode(strings.TrimSpace(t))
		if err != nil || len(b) != 32 {
			return out, errorTypes.NewValidationError(field, "Invalid %s: expected 32 bytes of 0x-hex", field)
		}
		copy(out[:], b)
		return out, nil
	}
	return out, errorTypes.NewValidationError(field, "Invalid %s: %v", field, v)
}

func toBytes(v any, field string) ([]byte, error) {
	switch t := v.(type) {
	case []byte:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "0x" {
			return []byte{}, nil
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
		}
		return b, nil
	}
	return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, v)
}

func toBigInt(v any, field string) (*big.Int, error) {
	n, err := numbers.ToBigInt(v)
	if err != nil {
		return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
	}
	return n, nil
}

func toUint(v any, field string, bits int) (uint64, error) {
	n, err := toBigInt(v, field)
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 || n.BitLen() > bits {
		return 0, errorTypes.NewValidationError(field, "%s is out of range for uint%d", field, bits)
	}
	return n.Uint64(), nil
}

// convertParam turns a loosely typed parameter into the Go value the ABI packer expects.
func convertParam(v any, t ParamType, field string) (any, error) {
	switch t {
	case Param_Address:
		return toAddress(v, field)
	case Param_AddressList:
		list, err := toList(v)
		if err != nil {
			return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
		}
		if len(list) == 0 {
			return nil, errorTypes.NewValidationError(field, "%s array is required and cannot be empty", field)
		}
		out := make([]common.Address, 0, len(list))
		for i, item := range list {
			a, err := toAddress(item, fmt.Sprintf("%s[%d]", field, i))
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	case Param_Uint256:
		n, err := toBigInt(v, field)
		if err != nil {
			return nil, err
		}
		if n.Sign() < 0 {
			return nil, errorTypes.NewValidationError(field, "%s must not be negative", field)
		}
		return n, nil
	case Param_Uint256List:
		list, err := toList(v)
		if err != nil {
			return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
		}
		out := make([]*big.Int, 0, len(list))
		for i, item := range list {
			n, err := toBigInt(item, fmt.Sprintf("%s[%d]", field, i))
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case Param_Uint64:
		return toUint(v, field, 64)
	case Param_Uint32:
		n, err := toUint(v, field, 32)
		return uint32(n), err
	case Param_Bytes32:
		return toBytes32(v, field)
	case Param_Bytes:
		return toBytes(v, field)
	case Param_String:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil
	case Param_Bool:
		b, err := toBool(v)
		if err != nil {
			return nil, errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
		}
		return b, nil
	}
	return nil, errorTypes.NewValidationError(field, "Unsupported parameter type %s", t)
}

// chainValueHook converts JSON scalars into chain types while decoding structured parameters.
func chainValueHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case bigIntType, bigPtrType:
		if from == bigIntType || from == bigPtrType {
			return data, nil
		}
		return numbers.ToBigInt(data)
	case addressType:
		if s, ok := data.(string); ok {
			return toAddress(s, "address")
		}
	case bytes32Type, hashType:
		if s, ok := data.(string); ok {
			b, err := toBytes32(s, "bytes32")
			if err != nil {
				return nil, err
			}
			if to == hashType {
				return common.Hash(b), nil
			}
			return b, nil
		}
	case bytesType:
		if s, ok := data.(string); ok {
			return toBytes(s, "bytes")
		}
	}
	return data, nil
}

// decodeStruct decodes a map or JSON string parameter into out.
func decodeStruct(v any, out any, field string) error {
	if s, ok := v.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
		}
		v = decoded
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       chainValueHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(v); err != nil {
		return errorTypes.NewValidationError(field, "Invalid %s: %v", field, err)
	}
	return nil
}

func (inv *Invocation) Has(name string) bool {
	_, ok := inv.params.GetParameter(name)
	return ok
}

// Param returns the converted value of a required parameter.
func (inv *Invocation) Param(name string, t ParamType) (any, error) {
	v, ok := inv.params.GetParameter(name)
	if !ok {
		return nil, errorTypes.NewValidationError(name, "%s is required", name)
	}
	return convertParam(v, t, name)
}

// OptionalParam returns def, unconverted, when the parameter is absent.
func (inv *Invocation) OptionalParam(name string, t ParamType, def any) (any, error) {
	v, ok := inv.params.GetParameter(name)
	if !ok {
		return def, nil
	}
	return convertParam(v, t, name)
}

func (inv *Invocation) Address(name string) (common.Address, error) {
	v, err := inv.Param(name, Param_Address)
	if err != nil {
		return common.Address{}, err
	}
	return v.(common.Address), nil
}

func (inv *Invocation) AddressOr(name string, def common.Address) (common.Address, error) {
	v, err := inv.OptionalParam(name, Param_Address, def)
	if err != nil {
		return common.Address{}, err
	}
	return v.(common.Address), nil
}

func (inv *Invocation) AddressList(name string) ([]common.Address, error) {
	v, err := inv.Param(name, Param_AddressList)
	if err != nil {
		return nil, err
	}
	return v.([]common.Address), nil
}

func (inv *Invocation) BigInt(name string) (*big.Int, error) {
	v, err := inv.Param(name, Param_Uint256)
	if err != nil {
		return nil, err
	}
	return v.(*big.Int), nil
}

func (inv *Invocation) BigIntList(name string) ([]*big.Int, error) {
	v, err := inv.Param(name, Param_Uint256List)
	if err != nil {
		return nil, err
	}
	return v.([]*big.Int), nil
}

func (inv *Invocation) String(name string, def string) string {
	v, ok := inv.params.GetParameter(name)
	if !ok {
		return def
	}
	s, _ := convertParam(v, Param_String, name)
	return s.(string)
}

func (inv *Invocation) Bool(name string, def bool) (bool, error) {
	v, err := inv.OptionalParam(name, Param_Bool, def)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (inv *Invocation) Uint64(name string, def uint64) (uint64, error) {
	v, err := inv.OptionalParam(name, Param_Uint64, def)
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

func (inv *Invocation) Bytes32(name string) ([32]byte, error) {
	v, err := inv.Param(name, Param_Bytes32)
	if err != nil {
		return [32]byte{}, err
	}
	return v.([32]byte), nil
}

func (inv *Invocation) Bytes(name string) ([]byte, error) {
	v, err := inv.Param(name, Param_Bytes)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Decode decodes a structured parameter (an object or its JSON text) into out.
func (inv *Invocation) Decode(name string, out any) error {
	v, ok := inv.params.GetParameter(name)
	if !ok {
		return errorTypes.NewValidationError(name, "%s is required", name)
	}
	return decodeStruct(v, out, name)
}
