// Package config loads the wxlog configuration.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (Default).
//  2. An optional config file. The format is chosen by extension:
//     .yaml/.yml (gopkg.in/yaml.v3), .toml (github.com/BurntSushi/toml)
//     or .json/.jsonc (github.com/tidwall/jsonc strips comments and
//     trailing commas before encoding/json parses it).
//  3. WXLOG_* environment variables, plus NO_COLOR.
//
// The default file location is $XDG_CONFIG_HOME/wxlog/config.yaml. A
// missing default file is not an error; a missing file given explicitly is.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the GraphQL endpoint of the workout log service.
	DefaultEndpoint = "https://weightxreps.net/api/graphql"

	// DefaultTimeout bounds every HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultWorkers is the number of days fetched concurrently.
	DefaultWorkers = 4

	// appDirName is the directory under the user config/cache dirs.
	appDirName = "wxlog"
)

// Bodyweight display units.
const (
	UnitPounds    = "lb"
	UnitKilograms = "kg"
)

// ErrConfigNotFound is returned when an explicitly requested config file
// does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Duration is a time.Duration that decodes from strings such as "30s"
// in every supported file format.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler, which yaml.v3, toml
// and encoding/json all honor for string values.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds every setting of the CLI.
type Config struct {
	// Endpoint is the GraphQL URL.
	Endpoint string `yaml:"endpoint" toml:"endpoint" json:"endpoint"`

	// Username and Password are used to log in when no valid cached
	// token exists.
	Username string `yaml:"username" toml:"username" json:"username"`
	Password string `yaml:"password" toml:"password" json:"password"`

	// TokenCache is the file the session token is cached in.
	TokenCache string `yaml:"token_cache" toml:"token_cache" json:"token_cache"`

	// Timeout bounds each HTTP request.
	Timeout Duration `yaml:"timeout" toml:"timeout" json:"timeout"`

	// Workers is the number of days fetched concurrently.
	Workers int `yaml:"workers" toml:"workers" json:"workers"`

	// Color enables colored output. A pointer so an absent key keeps the
	// default rather than forcing false.
	Color *bool `yaml:"color" toml:"color" json:"color"`

	// BodyweightUnit is "lb" or "kg".
	BodyweightUnit string `yaml:"bodyweight_unit" toml:"bodyweight_unit" json:"bodyweight_unit"`

	// Logging.
	LogLevel string `yaml:"log_level" toml:"log_level" json:"log_level"`
	LogFile  string `yaml:"log_file" toml:"log_file" json:"log_file"`
	LogJSON  bool   `yaml:"log_json" toml:"log_json" json:"log_json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	colorOn := true
	return &Config{
		Endpoint:       DefaultEndpoint,
		TokenCache:     DefaultTokenCachePath(),
		Timeout:        Duration(DefaultTimeout),
		Workers:        DefaultWorkers,
		Color:          &colorOn,
		BodyweightUnit: UnitPounds,
		LogLevel:       "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wxlog/config.yaml (or the
// platform equivalent). It returns "" when no config dir can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, "config.yaml")
}

// DefaultTokenCachePath returns $XDG_CACHE_HOME/wxlog/token (or the
// platform equivalent), falling back to the temp dir.
func DefaultTokenCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDirName, "token")
}

// Load builds the configuration from defaults, the config file at path
// and the environment. An empty path means DefaultPath, which may be
// absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		err := loadFile(cfg, path)
		// The default location is optional.
		if err != nil && (explicit || !errors.Is(err, ErrConfigNotFound)) {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes the file at path over cfg, keeping the values of keys
// the file does not mention.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".json", ".jsonc":
		// Config files are edited by hand, so comments and trailing commas
		// are allowed.
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q (use .yaml, .toml or .json)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with WXLOG_* variables. NO_COLOR (any non-empty
// value, see no-color.org) disables color.
func applyEnv(cfg *Config) {
	cfg.Endpoint = getEnv("WXLOG_ENDPOINT", cfg.Endpoint)
	cfg.Username = getEnv("WXLOG_USERNAME", cfg.Username)
	cfg.Password = getEnv("WXLOG_PASSWORD", cfg.Password)
	cfg.TokenCache = getEnv("WXLOG_TOKEN_CACHE", cfg.TokenCache)
	cfg.LogLevel = getEnv("WXLOG_LOG_LEVEL", cfg.LogLevel)
	cfg.Workers = getIntEnv("WXLOG_WORKERS", cfg.Workers)
	cfg.Timeout = Duration(getDurationEnv("WXLOG_TIMEOUT", time.Duration(cfg.Timeout)))

	if value, ok := os.LookupEnv("NO_COLOR"); ok && value != "" {
		off := false
		cfg.Color = &off
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", time.Duration(c.Timeout))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.BodyweightUnit {
	case UnitPounds, UnitKilograms:
	default:
		return fmt.Errorf("invalid bodyweight_unit %q (valid: lb, kg)", c.BodyweightUnit)
	}
	return nil
}

// ColorEnabled reports the effective color setting.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// HasCredentials reports whether both username and password are set.
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// LoadCredentials reads a two-line credentials file: the username (email)
// on the first line and the password on the second. Blank lines before
// the password are not allowed.
func LoadCredentials(path string) (username, password string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) == "" || strings.TrimSpace(lines[1]) == "" {
		return "", "", fmt.Errorf("credentials file %s must have at least 2 lines: email and password", path)
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}
