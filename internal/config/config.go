package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/ingest"
	"github.com/KaramelBytes/hmpi-cli/internal/source"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Ingestion
	Delimiter          string `mapstructure:"delimiter" yaml:"delimiter"`
	DecimalSeparator   string `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	ThousandsSeparator string `mapstructure:"thousands_separator" yaml:"thousands_separator"`
	Encoding           string `mapstructure:"encoding" yaml:"encoding"`
	SheetName          string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex         int    `mapstructure:"sheet_index" yaml:"sheet_index"`
	StrictMissing      bool   `mapstructure:"strict_missing" yaml:"strict_missing"`

	// Output
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`

	// Object storage
	S3Region         string `mapstructure:"s3_region" yaml:"s3_region"`
	S3Endpoint       string `mapstructure:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey      string `mapstructure:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey      string `mapstructure:"s3_secret_key" yaml:"s3_secret_key"`
	SourceTimeoutSec int    `mapstructure:"source_timeout_sec" yaml:"source_timeout_sec"`
}

var defaults = map[string]any{
	"delimiter":           "",
	"decimal_separator":   "",
	"thousands_separator": "",
	"encoding":            "auto",
	"sheet_name":          "",
	"sheet_index":         1,
	"strict_missing":      false,
	"output_format":       "table",
	"s3_region":           "",
	"s3_endpoint":         "",
	"s3_access_key":       "",
	"s3_secret_key":       "",
	"source_timeout_sec":  60,
}

// Keys lists the recognised configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultPath is ~/.hmpi/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".hmpi", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.hmpi/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (HMPI_*) > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("HMPI")
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".hmpi"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// Set assigns a single key from its string form.
func (c *Global) Set(key, value string) error {
	switch key {
	case "delimiter":
		if _, err := ParseDelimiter(value); err != nil {
			return err
		}
		c.Delimiter = value
	case "decimal_separator":
		if _, err := ParseDecimalSeparator(value); err != nil {
			return err
		}
		c.DecimalSeparator = value
	case "thousands_separator":
		if _, err := ParseThousandsSeparator(value); err != nil {
			return err
		}
		c.ThousandsSeparator = value
	case "encoding":
		c.Encoding = value
	case "sheet_name":
		c.SheetName = value
	case "sheet_index":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("sheet_index must be a positive integer")
		}
		c.SheetIndex = n
	case "strict_missing":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict_missing must be true or false")
		}
		c.StrictMissing = b
	case "output_format":
		switch value {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("output_format must be one of table, json, yaml")
		}
		c.OutputFormat = value
	case "s3_region":
		c.S3Region = value
	case "s3_endpoint":
		c.S3Endpoint = value
	case "s3_access_key":
		c.S3AccessKey = value
	case "s3_secret_key":
		c.S3SecretKey = value
	case "source_timeout_sec":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("source_timeout_sec must be a non-negative integer")
		}
		c.SourceTimeoutSec = n
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Get returns a key's value in string form; secrets are masked.
func (c *Global) Get(key string) (string, bool) {
	switch key {
	case "delimiter":
		return c.Delimiter, true
	case "decimal_separator":
		return c.DecimalSeparator, true
	case "thousands_separator":
		return c.ThousandsSeparator, true
	case "encoding":
		return c.Encoding, true
	case "sheet_name":
		return c.SheetName, true
	case "sheet_index":
		return strconv.Itoa(c.SheetIndex), true
	case "strict_missing":
		return strconv.FormatBool(c.StrictMissing), true
	case "output_format":
		return c.OutputFormat, true
	case "s3_region":
		return c.S3Region, true
	case "s3_endpoint":
		return c.S3Endpoint, true
	case "s3_access_key":
		return mask(c.S3AccessKey), true
	case "s3_secret_key":
		return mask(c.S3SecretKey), true
	case "source_timeout_sec":
		return strconv.Itoa(c.SourceTimeoutSec), true
	}
	return "", false
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// IngestOptions converts the configuration into parser options.
func (c *Global) IngestOptions() ingest.Options {
	opt := ingest.DefaultOptions()
	// Values are checked by Set and Load; anything else falls back to auto-detect.
	opt.Delimiter, _ = ParseDelimiter(c.Delimiter)
	opt.DecimalSeparator, _ = ParseDecimalSeparator(c.DecimalSeparator)
	opt.ThousandsSeparator, _ = ParseThousandsSeparator(c.ThousandsSeparator)
	if c.Encoding != "" {
		opt.Encoding = c.Encoding
	}
	opt.SheetName = c.SheetName
	if c.SheetIndex > 0 {
		opt.SheetIndex = c.SheetIndex
	}
	opt.StrictMissing = c.StrictMissing
	return opt
}

// SourceConfig converts the configuration into object storage settings.
func (c *Global) SourceConfig() source.Config {
	return source.Config{
		S3: source.S3Config{
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		},
		Timeout: time.Duration(c.SourceTimeoutSec) * time.Second,
	}
}
