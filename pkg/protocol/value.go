package protocol

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Object is a decoded JSON object. Accessors return (zero, false) instead
// of an error when a key is absent or holds the wrong type; whether that
// means "skip the field" or "fail the message" is the decoder's call,
// which is how required and optional fields get their asymmetric handling.
type Object map[string]any

// ParseObject decodes raw wire bytes into an Object. Numbers are kept as
// json.Number so 64-bit ids survive undamaged.
func ParseObject(data []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, ErrInvalidStructure
	}

	obj, ok := AsObject(v)
	if !ok {
		return nil, ErrInvalidStructure
	}
	return obj, nil
}

// AsObject converts a decoded JSON value to an Object if it is one.
func AsObject(v any) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, true
	case map[string]any:
		return Object(m), true
	default:
		return nil, false
	}
}

// GetString returns the string under key.
func (o Object) GetString(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// GetBool returns the bool under key.
func (o Object) GetBool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}

// GetUint64 returns the number under key if it is a non-negative integer.
func (o Object) GetUint64(key string) (uint64, bool) {
	return asUint64(o[key])
}

// GetUint32 returns the number under key if it fits in a uint32.
func (o Object) GetUint32(key string) (uint32, bool) {
	n, ok := asUint64(o[key])
	if !ok || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

// GetTimestamp returns the numeric Unix-seconds value under key.
func (o Object) GetTimestamp(key string) (Timestamp, bool) {
	n, ok := asUint64(o[key])
	return Timestamp(n), ok
}

// GetObject returns the nested object under key.
func (o Object) GetObject(key string) (Object, bool) {
	return AsObject(o[key])
}

// GetArray returns the array under key.
func (o Object) GetArray(key string) ([]any, bool) {
	a, ok := o[key].([]any)
	return a, ok
}

// GetStringSlice returns the array under key when every element is a
// string. A single non-string element discards the whole array.
func (o Object) GetStringSlice(key string) ([]string, bool) {
	arr, ok := o.GetArray(key)
	if !ok {
		return nil, false
	}
	out := make([]string, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// asUint64 coerces the JSON number representations we see in practice:
// json.Number from ParseObject, float64 from a plain json.Unmarshal, and
// native integers from hand-built objects. Negative and fractional values
// do not coerce.
func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= float64(math.MaxUint64) {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	case uint:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	default:
		return 0, false
	}
}
