package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-yaml"
)

// FromYAML converts a value decoded by goccy/go-yaml into a node tree.
// Mappings must be decoded with yaml.UseOrderedMap() to keep field order;
// plain map values are accepted but get sorted fields.
func FromYAML(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		res.Values = make([]*Node, len(x))
		for i, e := range x {
			y, err := FromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = y
		}
		return res, nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i := range x {
			key, err := FromYAML(x[i].Key)
			if err != nil {
				return nil, err
			}
			val, err := FromYAML(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: key, Val: val}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, 0, len(x))
		for _, k := range keys {
			val, err := FromYAML(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: FromString(k), Val: val})
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}

func fromUint(x uint64) (*Node, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrValue, x)
	}
	return FromInt(int64(x)), nil
}

// ToYAML converts a node tree back to a value goccy/go-yaml can marshal.
// Objects become yaml.MapSlice so field order survives encoding.
func (y *Node) ToYAML() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return 0
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToYAML()
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{
				Key:   y.Fields[i].ToYAML(),
				Value: y.Values[i].ToYAML(),
			}
		}
		return res
	}
	return nil
}
