// Package constants provides shared constants for the impact-dashboard application.
package constants

import "time"

// Impact categories in display order.
const (
	CategoryDirect   = "Direct Impact"
	CategoryIndirect = "Indirect Impact"
	CategoryInduced  = "Induced Impact"
)

// Seed values in millions, applied once at startup.
const (
	SeedDirect   = 5.0
	SeedIndirect = 2.5
	SeedInduced  = 1.5
)

// Descriptions shown alongside each category.
const (
	DescriptionDirect   = "Initial expenditure"
	DescriptionIndirect = "Business-to-business purchases"
	DescriptionInduced  = "Household spending of labor income"
)

// Bar colors for each category.
const (
	FillDirect   = "#8884d8"
	FillIndirect = "#82ca9d"
	FillInduced  = "#ffc658"
)

// Display constants
const (
	// DefaultTitle is the dashboard heading
	DefaultTitle = "Economic Impact Analysis: Cheech Marin Center for Chicano Art & Culture"

	// DefaultSubtitle is the footnote under the summary panel
	DefaultSubtitle = "Based on projected data for the first year of operation"

	// DisplayPlaces is the number of decimals shown for impact figures
	DisplayPlaces = 2

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. IMPACT_SEED_DIRECT
	EnvPrefix = "IMPACT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimit is the default sustained API request rate per second
	DefaultRateLimit = 20.0

	// DefaultRateBurst is the default API burst size
	DefaultRateBurst = 40

	// ShutdownTimeout bounds graceful server shutdown
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout bounds how long a client may take to send headers
	ReadHeaderTimeout = 5 * time.Second
)
