package impact

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numericPrefix matches the longest leading decimal literal; anything after
// it is ignored.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ParseValue coerces user input to a record value. Strings are read up to the
// end of their leading numeric literal. Anything that yields no number, NaN or
// a signed zero becomes 0.
func ParseValue(raw any) float64 {
	v := parseLeadingFloat(raw)
	if math.IsNaN(v) || v == 0 {
		return 0
	}
	return v
}

func parseLeadingFloat(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return parseText(toText(raw))
	}
}

func toText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case []any:
		// Lists read as their comma-joined elements, so a single-element
		// list reads as that element.
		parts := make([]string, len(v))
		for i, e := range v {
			if e != nil {
				parts[i] = toText(e)
			}
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func parseText(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	literal := numericPrefix.FindString(s)
	if literal == "" {
		return math.NaN()
	}
	// Overflow reports ErrRange alongside ±Inf, which is the wanted result.
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
