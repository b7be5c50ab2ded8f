package records

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an output record whose keys marshal in insertion order.
type Record struct {
	om *orderedmap.OrderedMap[string, any]
}

func New() *Record {
	return &Record{om: orderedmap.New[string, any]()}
}

// Set stores the serialized form of value under key. Setting an existing key keeps its position.
func (r *Record) Set(key string, value any) *Record {
	r.om.Set(key, Serialize(value))
	return r
}

func (r *Record) Get(key string) (any, bool) {
	return r.om.Get(key)
}

// GetString returns the value under key if it is a string.
func (r *Record) GetString(key string) string {
	v, ok := r.om.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (r *Record) Has(key string) bool {
	_, ok := r.om.Get(key)
	return ok
}

func (r *Record) Delete(key string) {
	r.om.Delete(key)
}

func (r *Record) Len() int {
	return r.om.Len()
}

func (r *Record) Keys() []string {
	keys := make([]string, 0, r.om.Len())
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Merge copies every key of other into r, in other's order.
func (r *Record) Merge(other *Record) *Record {
	if other == nil {
		return r
	}
	for pair := other.om.Oldest(); pair != nil; pair = pair.Next() {
		r.om.Set(pair.Key, pair.Value)
	}
	return r
}

// ToMap flattens the record into a plain map, recursing into nested records.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, r.om.Len())
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = unwrap(pair.Value)
	}
	return out
}

func unwrap(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = unwrap(e)
		}
		return out
	}
	return v
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return r.om.MarshalJSON()
}

func (r *Record) String() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("<record: %v>", err)
	}
	return string(b)
}

// FromMap builds a record from a plain map with keys sorted for a stable order.
func FromMap(m map[string]any) *Record {
	r := New()
	keys := lo.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

var (
	bigIntType  = reflect.TypeOf(big.Int{})
	addressType = reflect.TypeOf(common.Address{})
	hashType    = reflect.TypeOf(common.Hash{})
)

// Serialize converts chain values into transport-safe output values.
// Integers of every width become decimal strings, addresses become checksummed hex,
// byte arrays become 0x hex, and structs become records keyed by their json tags.
func Serialize(value any) any {
	if value == nil {
		return nil
	}
	switch t := value.(type) {
	case *Record:
		return t
	case string, bool, float32, float64:
		return t
	case *big.Int:
		if t == nil {
			return nil
		}
		return t.String()
	case big.Int:
		return t.String()
	case common.Address:
		return t.Hex()
	case *common.Address:
		if t == nil {
			return nil
		}
		return t.Hex()
	case common.Hash:
		return t.Hex()
	case []byte:
		return "0x" + hex.EncodeToString(t)
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(t, &decoded); err != nil {
			return string(t)
		}
		return Serialize(decoded)
	case map[string]any:
		return FromMap(t)
	}
	return serializeReflect(reflect.ValueOf(value))
}

func serializeReflect(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return Serialize(v.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Array:
		if v.Type() == addressType {
			return v.Interface().(common.Address).Hex()
		}
		if v.Type() == hashType {
			return v.Interface().(common.Hash).Hex()
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return "0x" + hex.EncodeToString(b)
		}
		return serializeList(v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return "0x" + hex.EncodeToString(v.Bytes())
		}
		return serializeList(v)
	case reflect.Map:
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return FromMap(m)
	case reflect.Struct:
		if v.Type() == bigIntType {
			b := v.Interface().(big.Int)
			return b.String()
		}
		r := New()
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			r.Set(fieldName(f), v.Field(i).Interface())
		}
		return r
	}
	return v.Interface()
}

func serializeList(v reflect.Value) []any {
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = Serialize(v.Index(i).Interface())
	}
	return out
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	runes := []rune(f.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
