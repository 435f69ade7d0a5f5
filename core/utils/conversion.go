package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseID converts a wire identifier to an int64 using explicit type switching.
// JSON:API ids are strings, but numeric ids are accepted as well. The second
// return value is false when the value is absent or not an integral number.
func ParseID(val any) (int64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return int64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	case []byte:
		return ParseID(string(v))
	default:
		return 0, false
	}
}

// FormatID renders an entity id the way JSON:API transmits it.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
