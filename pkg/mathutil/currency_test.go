package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round(tt.input), 0.001)
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"No values", nil, 0},
		{"Seed values", []float64{5.0, 2.5, 1.5}, 9.0},
		{"Negative value", []float64{5.0, -2.5, 1.5}, 4.0},
		{"Zeros", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sum(tt.input...))
		})
	}
}

func TestSumIsOrderIndependent(t *testing.T) {
	assert.Equal(t, Sum(1.25, 2.5, 3.75), Sum(3.75, 1.25, 2.5))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.8, Ratio(4.0, 5.0))
	assert.True(t, math.IsInf(Ratio(4.0, 0), 1))
	assert.True(t, math.IsInf(Ratio(-4.0, 0), -1))
	assert.True(t, math.IsNaN(Ratio(0, 0)))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-12.5))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, IsFinite(math.NaN()))
}
