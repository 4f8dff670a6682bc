package mapper

import (
	"math"
	"strconv"
	"strings"
)

// Coercion helpers for payloads from legacy backends. Upstream
// systems send numbers as strings, strings as numbers, and omit keys
// freely, so every read goes through a parse-or-default step instead
// of a type assertion.

// toFloat converts any JSON scalar to a float64, returning 0 for
// anything unparseable (including NaN and infinities).
func toFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// toInt converts any JSON scalar to an int, truncating fractions and
// returning 0 for anything unparseable.
func toInt(v any) int {
	return int(toFloat(v))
}

// toString returns the value as a trimmed string, or "" for
// non-strings.
func toString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// firstString returns the first non-empty string among the given keys
// of m, or fallback when none resolve.
func firstString(m map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if s := toString(m[k]); s != "" {
			return s
		}
	}
	return fallback
}

// firstValue returns the first present value among the given keys.
func firstValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// subMap returns m[key] as a map when it is one, else nil.
func subMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

// anySlice returns the value as a []any when it is one, else nil.
func anySlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
