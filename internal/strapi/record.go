package strapi

import (
	"encoding/json"
	"math"
	"strings"
)

const (
	maxIntValue = int(^uint(0) >> 1)
	minIntValue = -maxIntValue - 1
)

// Record is the flattened form of a CMS relation: its numeric id plus the
// attribute map the entity fields live on. The upstream API returns the same
// logical record in several wrappings; Resolve collapses all of them.
type Record struct {
	ID    int
	Attrs map[string]any
}

// ResolveRecord unwraps a raw relation value into a Record. It accepts a flat
// attribute map, an {id, attributes} pair, and either of those nested one
// level under a data key. It returns ok=false when no numeric id can be
// found, which callers treat as an unresolvable relation.
func ResolveRecord(raw any) (Record, bool) {
	attrs, ok := raw.(map[string]any)
	if !ok || attrs == nil {
		return Record{}, false
	}

	if wrapped, exists := attrs["data"]; exists {
		return ResolveRecord(wrapped)
	}

	if nested, exists := attrs["attributes"]; exists {
		inner, ok := nested.(map[string]any)
		if !ok {
			return Record{}, false
		}
		id, ok := coerceInt(attrs["id"])
		if !ok {
			return Record{}, false
		}
		return Record{ID: id, Attrs: inner}, true
	}

	id, ok := coerceInt(attrs["id"])
	if !ok {
		return Record{}, false
	}
	return Record{ID: id, Attrs: attrs}, true
}

// ExtractCollection normalizes the collection wrappings the CMS emits: a bare
// array, an array nested under data, or a single object treated as a
// one-element collection. Anything else yields nil.
func ExtractCollection(raw any) []any {
	switch value := raw.(type) {
	case nil:
		return nil
	case []any:
		return value
	case map[string]any:
		if wrapped, exists := value["data"]; exists {
			switch inner := wrapped.(type) {
			case []any:
				return inner
			case map[string]any:
				return []any{inner}
			default:
				return nil
			}
		}
		return []any{value}
	default:
		return nil
	}
}

// StringAttr returns the first non-blank string found under keys. The
// fallback-key form covers schema migrations where the same field exists
// under two names (name vs authorName).
func StringAttr(attrs map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := attrs[key].(string); ok {
			if strings.TrimSpace(value) != "" {
				return value
			}
		}
	}
	return ""
}

// IntAttr coerces the value under the first matching key to an int.
func IntAttr(attrs map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		if value, exists := attrs[key]; exists {
			if coerced, ok := coerceInt(value); ok {
				return coerced, true
			}
		}
	}
	return 0, false
}

// FloatAttr coerces the value under the first matching key to a float64.
func FloatAttr(attrs map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch value := attrs[key].(type) {
		case float64:
			return value, true
		case float32:
			return float64(value), true
		case int:
			return float64(value), true
		case int64:
			return float64(value), true
		case json.Number:
			if parsed, err := value.Float64(); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

// BoolAttr reports the truthiness of the value under key. Absent or
// non-boolean values are false.
func BoolAttr(attrs map[string]any, key string) bool {
	value, ok := attrs[key].(bool)
	return ok && value
}

func coerceInt(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int8:
		return int(typed), true
	case int16:
		return int(typed), true
	case int32:
		return int(typed), true
	case int64:
		return int(typed), true
	case uint:
		return int(typed), true
	case uint8:
		return int(typed), true
	case uint16:
		return int(typed), true
	case uint32:
		return int(typed), true
	case uint64:
		if typed > uint64(maxIntValue) {
			return 0, false
		}
		return int(typed), true
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || math.Mod(typed, 1) != 0 {
			return 0, false
		}
		return int(typed), true
	case float32:
		return coerceInt(float64(typed))
	case json.Number:
		parsed, err := typed.Int64()
		if err != nil {
			return 0, false
		}
		if parsed > int64(maxIntValue) || parsed < int64(minIntValue) {
			return 0, false
		}
		return int(parsed), true
	default:
		return 0, false
	}
}
