package document

import (
	"fmt"
	"math"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/configtools/difftoml/pkg/errors"
)

// fromAny converts a decoded parser value into the closed Value union.
// Both the TOML and YAML decoders hand back trees of Go scalars, slices,
// and string-keyed maps; anything outside that shape is rejected.
func fromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil
	case bool:
		return Boolean(v), nil
	case int:
		return Integer(int64(v)), nil
	case int8:
		return Integer(int64(v)), nil
	case int16:
		return Integer(int64(v)), nil
	case int32:
		return Integer(int64(v)), nil
	case int64:
		return Integer(v), nil
	case uint:
		return Integer(int64(v)), nil
	case uint8:
		return Integer(int64(v)), nil
	case uint16:
		return Integer(int64(v)), nil
	case uint32:
		return Integer(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, errors.NewValidationError("integer", v, "value exceeds the representable integer range")
		}
		return Integer(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case time.Time:
		return DateTime(v), nil
	case toml.LocalDate:
		return DateTime(v.AsTime(time.UTC)), nil
	case toml.LocalDateTime:
		return DateTime(v.AsTime(time.UTC)), nil
	case toml.LocalTime:
		return DateTime(time.Date(0, time.January, 1, v.Hour, v.Minute, v.Second, v.Nanosecond, time.UTC)), nil
	case []any:
		elems := make([]Value, 0, len(v))
		for _, raw := range v {
			elem, err := fromAny(raw)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, elem)
		}
		return Array(elems...), nil
	case map[string]any:
		table, err := tableFromMap(v)
		if err != nil {
			return Value{}, err
		}
		return TableValue(table), nil
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, val := range v {
			converted[fmt.Sprint(key)] = val
		}
		table, err := tableFromMap(converted)
		if err != nil {
			return Value{}, err
		}
		return TableValue(table), nil
	case nil:
		return Value{}, errors.NewValidationError("value", nil, "null values are not supported")
	default:
		return Value{}, errors.NewValidationError("value", raw, fmt.Sprintf("unsupported value type %T", raw))
	}
}

// tableFromMap converts a decoded string-keyed map into a Table.
func tableFromMap(raw map[string]any) (Table, error) {
	table := make(Table, len(raw))
	for key, val := range raw {
		value, err := fromAny(val)
		if err != nil {
			return nil, err
		}
		table[key] = value
	}
	return table, nil
}
