package impact

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringerValue struct{ s string }

func (v stringerValue) String() string { return v.s }

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"Integer string", "10", 10},
		{"Decimal string", "2.5", 2.5},
		{"Leading dot", ".5", 0.5},
		{"Trailing dot", "5.", 5},
		{"Leading whitespace", "  \t\n3.25", 3.25},
		{"Leading plus", "+4", 4},
		{"Negative", "-1.5", -1.5},
		{"Exponent", "1e3", 1000},
		{"Negative exponent", "25e-1", 2.5},
		{"Dangling exponent", "7e", 7},
		{"Trailing garbage", "12abc", 12},
		{"Second dot ignored", "1.2.3", 1.2},
		{"Hex reads leading zero", "0x10", 0},
		{"Comma stops literal", "1,234", 1},
		{"Alphabetic", "abc", 0},
		{"Empty", "", 0},
		{"Whitespace only", "   ", 0},
		{"Sign only", "-", 0},
		{"Dot only", ".", 0},
		{"Negative zero", "-0", 0},
		{"NaN text", "NaN", 0},
		{"Nil", nil, 0},
		{"Bool", true, 0},
		{"Float", 3.5, 3.5},
		{"Float NaN", math.NaN(), 0},
		{"Int", 7, 7},
		{"Int64", int64(-2), -2},
		{"Uint8", uint8(9), 9},
		{"JSON number", json.Number("6.75"), 6.75},
		{"Single element list", []any{"4.5"}, 4.5},
		{"Multi element list", []any{1.0, 2.0}, 1},
		{"Empty list", []any{}, 0},
		{"Object", map[string]any{"a": 1}, 0},
		{"Stringer", stringerValue{"8.5 million"}, 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.Signbit(got) && got == 0, "expected positive zero")
		})
	}
}

func TestParseValueInfinity(t *testing.T) {
	assert.True(t, math.IsInf(ParseValue("Infinity"), 1))
	assert.True(t, math.IsInf(ParseValue("-Infinity"), -1))
	assert.True(t, math.IsInf(ParseValue("+Infinityx"), 1))
	assert.True(t, math.IsInf(ParseValue("1e999"), 1))
	assert.True(t, math.IsInf(ParseValue(math.Inf(-1)), -1))
	assert.Equal(t, 0.0, ParseValue("infinity"))
}
