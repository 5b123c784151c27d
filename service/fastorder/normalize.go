package fastorder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Normalize trims and upper-cases a part number. It is idempotent and is
// applied before every lookup key comparison.
func Normalize(part string) string {
	return strings.ToUpper(strings.TrimSpace(part))
}

// NormalizeAny normalizes a loosely typed JSON value. nil becomes "".
func NormalizeAny(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Normalize(t)
	case float64:
		return Normalize(strconv.FormatFloat(t, 'f', -1, 64))
	case json.Number:
		return Normalize(t.String())
	case bool:
		return ""
	default:
		return Normalize(fmt.Sprintf("%v", t))
	}
}

// ParseQty reads a quantity the way storefront clients send it: numbers,
// numeric strings ("3", "3.5", "4 pcs"), or nothing. Missing, non-numeric and
// negative values become 1. An explicit 0 becomes 1 only when
// zeroAsDefault is set.
func ParseQty(v interface{}, zeroAsDefault bool) int {
	n, ok := leadingInt(v)
	switch {
	case !ok || n < 0:
		return 1
	case n == 0 && zeroAsDefault:
		return 1
	}
	return n
}

func leadingInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case float64:
		return int(t), true
	case json.Number:
		return leadingInt(t.String())
	case string:
		return parseIntPrefix(t)
	}
	return parseIntPrefix(fmt.Sprintf("%v", v))
}

// parseIntPrefix parses an optional sign and the longest run of digits at the
// start of s, ignoring surrounding whitespace.
func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
