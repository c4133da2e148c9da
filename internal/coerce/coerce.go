// Package coerce implements the lenient value conversions the hints parser
// relies on. Hints documents are authored by hand, frequently in formats
// that blur types (YAML strings, JSON numbers), so every helper accepts the
// native representation plus the common stringly-typed variants and reports
// absence instead of failing.
package coerce

import (
	"strconv"
	"strings"
)

// Bool accepts a native bool or the literal strings "true"/"false". Any
// other representation is absent.
func Bool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.TrimSpace(v) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Int accepts native integer kinds, a float with no fractional part, or a
// numeric string.
func Int(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		if float32(int(v)) == v {
			return int(v), true
		}
	case float64:
		if float64(int(v)) == v {
			return int(v), true
		}
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// Float accepts native numeric kinds or a numeric string.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// String accepts a native string or a Stringer. Empty strings are absent.
func String(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case interface{ String() string }:
		s := v.String()
		if s == "" {
			return "", false
		}
		return s, true
	}
	return "", false
}

// Primitive narrows a value to the closed set of kinds that are safe to
// surface as a field default without further type negotiation: string, bool,
// int64, float64. Everything else is dropped.
func Primitive(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return v, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return float64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return v, true
	}
	return nil, false
}

// StringList accepts a list of strings (dropping non-string members) or a
// comma-separated string whose entries are trimmed of surrounding
// whitespace. Empty entries are skipped.
func StringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		out := trimmed(v)
		return out, out != nil
	case []any:
		raw := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				raw = append(raw, s)
			}
		}
		out := trimmed(raw)
		return out, out != nil
	case string:
		out := trimmed(strings.Split(v, ","))
		return out, out != nil
	}
	return nil, false
}

// StringMap converts a generic map into string keys/values, dropping
// members whose value does not coerce to a non-empty string, bool, or
// number. Returns nil when nothing survives.
func StringMap(value any) (map[string]string, bool) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for key, entry := range raw {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if s, ok := scalarString(entry); ok {
			out[name] = s
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func scalarString(value any) (string, bool) {
	if s, ok := String(value); ok {
		return s, true
	}
	if b, ok := value.(bool); ok {
		return strconv.FormatBool(b), true
	}
	if f, ok := Float(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func trimmed(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		value := strings.TrimSpace(entry)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
