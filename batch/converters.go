package batch

import (
	"strconv"

	"github.com/edirooss/valkeybatch/batcherrors"
)

// Converter maps a transport-returned raw reply to the caller's expected
// type, or to a typed error value placed in that response slot. It is
// applied in place by the execution dispatcher, one per command, in
// command order.
type Converter func(reply any) any

// convOpaque passes the raw reply through unchanged. Used for the
// custom-command escape hatch, where no response shape is known ahead of
// time.
func convOpaque() Converter {
	return func(reply any) any { return reply }
}

// convNullableText expects a nil reply or a text reply (e.g. GET, which
// may return the Valkey "nil" reply for a missing key).
func convNullableText(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return nil
		}
		switch v := reply.(type) {
		case string:
			return v
		case []byte:
			return string(v)
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "text or nil", Got: typeName(reply)}
		}
	}
}

// convText expects a non-nullable text reply (e.g. SET's "OK").
func convText(cmdName string) Converter {
	return func(reply any) any {
		switch v := reply.(type) {
		case string:
			return v
		case []byte:
			return string(v)
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "text", Got: typeName(reply)}
		}
	}
}

// convInt expects an integer reply.
func convInt(cmdName string) Converter {
	return func(reply any) any {
		switch v := reply.(type) {
		case int64:
			return v
		case int:
			return int64(v)
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "integer", Got: typeName(reply)}
		}
	}
}

// convNullableInt expects a nil reply or an integer reply (e.g. OBJECT
// IDLETIME on a missing key).
func convNullableInt(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return nil
		}
		return convInt(cmdName)(reply)
	}
}

// convBool decodes a Valkey boolean-shaped integer reply (:0/:1) or a
// native RESP3 boolean into a Go bool.
func convBool(cmdName string) Converter {
	return func(reply any) any {
		switch v := reply.(type) {
		case bool:
			return v
		case int64:
			return v != 0
		case int:
			return v != 0
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "boolean", Got: typeName(reply)}
		}
	}
}

// convFloat decodes a float reply. Most float-valued commands (INCRBYFLOAT,
// ZSCORE, ...) reply with a bulk string over RESP2; RESP3 may reply with a
// native double.
func convFloat(cmdName string) Converter {
	return func(reply any) any {
		switch v := reply.(type) {
		case float64:
			return v
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "float", Got: "non-numeric text"}
			}
			return f
		case []byte:
			f, err := strconv.ParseFloat(string(v), 64)
			if err != nil {
				return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "float", Got: "non-numeric text"}
			}
			return f
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "float", Got: typeName(reply)}
		}
	}
}

// convNullableFloat is convFloat, but passes a nil reply through unchanged
// (e.g. ZSCORE on a missing member).
func convNullableFloat(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return nil
		}
		return convFloat(cmdName)(reply)
	}
}

// convArray expects an array reply and returns it unchanged, applying only
// a shape check. Used for commands whose elements are themselves structured
// (e.g. XRANGE entries, GEOPOS coordinate pairs) and are best left for the
// caller to destructure.
func convArray(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return []any(nil)
		}
		if arr, ok := reply.([]any); ok {
			return arr
		}
		return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "array", Got: typeName(reply)}
	}
}

// convArrayNullableText expects an array whose elements are each text or
// nil (e.g. MGET, HMGET).
func convArrayNullableText(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return []any(nil)
		}
		arr, ok := reply.([]any)
		if !ok {
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "array of text", Got: typeName(reply)}
		}
		out := make([]any, len(arr))
		for i, el := range arr {
			out[i] = convNullableText(cmdName)(el)
		}
		return out
	}
}

// convMap expects a map-shaped reply (e.g. HGETALL, CONFIG GET). RESP3
// transports may deliver a native map[string]any; RESP2 transports deliver
// a flat alternating array (key, value, key, value, ...), which this
// converter folds into the same map[string]string shape.
func convMap(cmdName string) Converter {
	return func(reply any) any {
		switch v := reply.(type) {
		case nil:
			return map[string]string{}
		case map[string]any:
			out := make(map[string]string, len(v))
			for k, val := range v {
				s, ok := asText(val)
				if !ok {
					return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "map of text", Got: typeName(val)}
				}
				out[k] = s
			}
			return out
		case []any:
			if len(v)%2 != 0 {
				return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "map (flat key/value array)", Got: "odd-length array"}
			}
			out := make(map[string]string, len(v)/2)
			for i := 0; i < len(v); i += 2 {
				k, kok := asText(v[i])
				val, vok := asText(v[i+1])
				if !kok || !vok {
					return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "map (flat key/value array)", Got: "non-text element"}
				}
				out[k] = val
			}
			return out
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "map", Got: typeName(reply)}
		}
	}
}

// convArrayOf expects an array reply and applies elemConv to each element,
// returning a nil slice unchanged (e.g. ZMSCORE on a missing key).
func convArrayOf(cmdName string, elemConv Converter) Converter {
	return func(reply any) any {
		if reply == nil {
			return []any(nil)
		}
		arr, ok := reply.([]any)
		if !ok {
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "array", Got: typeName(reply)}
		}
		out := make([]any, len(arr))
		for i, el := range arr {
			out[i] = elemConv(el)
		}
		return out
	}
}

// convDumpPayload expects a nil reply or a binary/text reply carrying an
// opaque DUMP payload, returned as []byte without any text interpretation
// since the payload is never guaranteed to be valid UTF-8.
func convDumpPayload(cmdName string) Converter {
	return func(reply any) any {
		if reply == nil {
			return []byte(nil)
		}
		switch v := reply.(type) {
		case []byte:
			return v
		case string:
			return []byte(v)
		default:
			return &batcherrors.ResponseShapeError{Command: cmdName, Expected: "binary or nil", Got: typeName(reply)}
		}
	}
}

func asText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	default:
		return "", false
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "text"
	case []byte:
		return "bytes"
	case int64, int:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
