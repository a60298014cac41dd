package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Valid pretty format", "pretty", false},
		{"Valid csv format", "csv", false},
		{"Valid json format", "json", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
		{"Case sensitive - uppercase", "PRETTY", true},
		{"Case sensitive - CSV uppercase", "CSV", true},
		{"Leading/trailing spaces", " pretty ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.format)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		assert.NoError(t, ValidateLogLevel(level), level)
	}
	for _, level := range []string{"trace", "INFO", "fatal"} {
		assert.Error(t, ValidateLogLevel(level), level)
	}
}
