// Package validation provides common validation utilities.
package validation

import (
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/rotisserie/eris"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return eris.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateLogLevel checks if the log level is one the logger understands.
// An empty level is accepted and means the default.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return eris.Errorf("invalid log level: %s", level)
}
