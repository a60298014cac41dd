package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address        string   `yaml:"address"`
	MaxBodySize    string   `yaml:"maxBodySize"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	RateLimit      float64  `yaml:"rateLimit"` // requests per second, 0 disables
	RateBurst      int      `yaml:"rateBurst"`
	bodySizeBytes  int64
}

// DefaultConfig returns the server configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:       constants.DefaultServerAddress,
		MaxBodySize:   fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		RateLimit:     constants.DefaultRateLimit,
		RateBurst:     constants.DefaultRateBurst,
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
	}
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, eris.Wrap(err, "failed to read server config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrap(err, "failed to parse server config")
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// Options returns the handler options derived from this configuration.
func (c *Config) Options() Options {
	return Options{
		MaxBodySize:    c.bodySizeBytes,
		AllowedOrigins: append([]string(nil), c.AllowedOrigins...),
		RateLimit:      c.RateLimit,
		RateBurst:      c.RateBurst,
	}
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RateLimit < 0 {
		return eris.Errorf("rateLimit must not be negative, got %g", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = constants.DefaultRateBurst
	}

	origins := c.AllowedOrigins[:0]
	for _, origin := range c.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.AllowedOrigins = origins

	sizeStr := strings.TrimSpace(c.MaxBodySize)
	if sizeStr == "" {
		c.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		c.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodySizeBytes
	}
	c.bodySizeBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "64K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, eris.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "invalid size value %q", value)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, eris.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, eris.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
