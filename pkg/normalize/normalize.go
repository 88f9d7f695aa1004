// Package normalize converts provider-native structured values into trees
// built from JSON-representable primitives only. The conversion is total:
// every input kind the provider can produce has a defined output, and
// anything outside the known set passes through unchanged.
package normalize

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date with no time component, the date-only value kind
// a provider can return alongside full timestamps.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String formats the date as an ISO-8601 calendar date.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Value normalizes an arbitrary provider value into JSON-safe primitives.
// It dispatches over the closed set of producer-side kinds:
//
//   - mappings and sequences are rebuilt with every element normalized,
//     order preserved
//   - timestamps become ISO-8601 strings in UTC with a literal "Z" suffix
//   - calendar dates become ISO-8601 date strings
//   - fixed-point decimals become int64 when the fractional part is zero,
//     float64 otherwise
//   - all other primitives pass through unchanged
//
// Normalizing an already-normalized value returns it unchanged.
func Value(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Value(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, Value(item))
		}
		return out
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case Date:
		return v.String()
	case decimal.Decimal:
		// 4.0 must come out as the integer 4, 4.5 as the float 4.5.
		if v.IsInteger() {
			return v.IntPart()
		}
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}

// Record normalizes a full record tree, preserving its key set.
func Record(rec map[string]any) map[string]any {
	out, _ := Value(rec).(map[string]any)
	return out
}
