// Package config layers dpdash settings from flags, DPDASH_* environment
// variables and an optional YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/engine"
)

// Keys understood by Load. Each maps to the DPDASH_<KEY> environment variable.
const (
	KeyAPIURL        = "api_url"
	KeyAPIPrefix     = "api_prefix"
	KeyCompartmentID = "compartment_id"
	KeyInterval      = "interval"
	KeyTimeout       = "timeout"
	KeyJobLimit      = "job_limit"
	KeyTrendDays     = "trend_days"
	KeyInsecure      = "insecure"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "DPDASH"

// DefaultCompartmentID is the compartment watched when none is configured.
const DefaultCompartmentID = "demo-compartment"

// Config is the resolved runtime configuration.
type Config struct {
	APIURL        string
	APIPrefix     string
	CompartmentID string
	Interval      time.Duration
	Timeout       time.Duration
	JobLimit      int
	TrendDays     int
	Insecure      bool
	LogFile       string
	LogLevel      string
}

// ErrMissingAPIURL is returned by Validate when no backend URL was given.
var ErrMissingAPIURL = errors.New("api url is required")

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIPrefix, client.DefaultAPIPrefix)
	v.SetDefault(KeyCompartmentID, DefaultCompartmentID)
	v.SetDefault(KeyInterval, engine.DefaultInterval)
	v.SetDefault(KeyTimeout, client.DefaultRequestTimeout)
	v.SetDefault(KeyJobLimit, engine.DefaultJobLimit)
	v.SetDefault(KeyTrendDays, engine.DefaultTrendDays)
	v.SetDefault(KeyInsecure, false)
	v.SetDefault(KeyLogLevel, "info")
}

// RegisterFlags adds one flag per key to fs. Flag names use dashes.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyAPIURL), "", "backend base URL, e.g. http://localhost:8000")
	fs.String(flagName(KeyAPIPrefix), client.DefaultAPIPrefix, "path prefix of the dashboard API")
	fs.String(flagName(KeyCompartmentID), DefaultCompartmentID, "compartment to watch")
	fs.Duration(flagName(KeyInterval), engine.DefaultInterval, "refresh interval (e.g. 30s, 1m)")
	fs.Duration(flagName(KeyTimeout), client.DefaultRequestTimeout, "per-request timeout")
	fs.Int(flagName(KeyJobLimit), engine.DefaultJobLimit, "number of recent jobs to show")
	fs.Int(flagName(KeyTrendDays), engine.DefaultTrendDays, "days of storage trend history")
	fs.Bool(flagName(KeyInsecure), false, "skip TLS certificate verification")
	fs.String(flagName(KeyLogFile), "", "log file (the TUI defaults to dpdash.log, other commands log to stderr)")
	fs.String(flagName(KeyLogLevel), "info", "log level (debug, info, warn, error)")
}

// BindFlags binds every key to its flag in fs and enables DPDASH_* environment lookup.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, k := range keys() {
		if err := v.BindPFlag(k, fs.Lookup(flagName(k))); err != nil {
			return fmt.Errorf("bind flag %s: %w", k, err)
		}
	}
	return nil
}

// ReadFile loads a YAML config file into v. An empty path looks for
// .dpdash.yaml in the working directory and home directory and ignores a
// missing file.
func ReadFile(v *viper.Viper, path string, home string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(".dpdash")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home != "" {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIURL:        strings.TrimSpace(v.GetString(KeyAPIURL)),
		APIPrefix:     v.GetString(KeyAPIPrefix),
		CompartmentID: strings.TrimSpace(v.GetString(KeyCompartmentID)),
		Interval:      v.GetDuration(KeyInterval),
		Timeout:       v.GetDuration(KeyTimeout),
		JobLimit:      v.GetInt(KeyJobLimit),
		TrendDays:     v.GetInt(KeyTrendDays),
		Insecure:      v.GetBool(KeyInsecure),
		LogFile:       v.GetString(KeyLogFile),
		LogLevel:      v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and normalizes APIURL.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}
	base, err := ParseBaseURL(c.APIURL)
	if err != nil {
		return err
	}
	c.APIURL = base

	switch {
	case c.CompartmentID == "":
		return errors.New("compartment id must not be empty")
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	case c.JobLimit <= 0:
		return fmt.Errorf("job limit must be positive, got %d", c.JobLimit)
	case c.TrendDays <= 0:
		return fmt.Errorf("trend days must be positive, got %d", c.TrendDays)
	}
	return nil
}

// ParseBaseURL validates a backend URI and returns it without a trailing slash.
// Only http and https with a host are accepted. Credentials are rejected
// because the dashboard API is unauthenticated.
func ParseBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URI %q: %w", raw, err)
	}
	if u.User != nil {
		return "", fmt.Errorf("invalid URI: credentials are not supported")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q (must be http or https)", u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid URI %q: host is required", raw)
	}
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return "", fmt.Errorf("invalid URI %q: port must be 1-65535", raw)
		}
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return "", fmt.Errorf("invalid URI %q: query and fragment are not allowed", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// ClientConfig returns the HTTP client settings.
func (c *Config) ClientConfig() client.ClientConfig {
	return client.ClientConfig{
		BaseURL:            c.APIURL,
		APIPrefix:          c.APIPrefix,
		InsecureSkipVerify: c.Insecure,
		RequestTimeout:     c.Timeout,
	}
}

// Request returns the per-cycle load parameters.
func (c *Config) Request() engine.Request {
	return engine.Request{
		CompartmentID: c.CompartmentID,
		JobLimit:      c.JobLimit,
		TrendDays:     c.TrendDays,
	}
}

func keys() []string {
	return []string{
		KeyAPIURL, KeyAPIPrefix, KeyCompartmentID, KeyInterval, KeyTimeout,
		KeyJobLimit, KeyTrendDays, KeyInsecure, KeyLogFile, KeyLogLevel,
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
