package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version" ignored:"true"`
	Weather WeatherConfig `toml:"weather"`
	UI      UISettings    `toml:"ui"`
	Log     LogSettings   `toml:"log"`
}

// WeatherConfig contains settings for the weather provider
type WeatherConfig struct {
	APIKey  string   `toml:"api_key,omitempty" envconfig:"WEATHER_API_KEY" validate:"required"`
	BaseURL string   `toml:"base_url" envconfig:"WEATHER_API_BASE_URL" validate:"required,url"`
	Timeout Duration `toml:"timeout" envconfig:"WEATHERDASH_TIMEOUT"`
}

// UISettings represents widget behaviour
type UISettings struct {
	DefaultCity    string   `toml:"default_city" envconfig:"WEATHERDASH_DEFAULT_CITY" validate:"required"`
	Debounce       Duration `toml:"debounce" envconfig:"WEATHERDASH_DEBOUNCE"`
	MinQueryLength int      `toml:"min_query_length" envconfig:"WEATHERDASH_MIN_QUERY_LENGTH" validate:"gte=0"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file" envconfig:"WEATHERDASH_LOG_FILE"`
	Level string `toml:"level" envconfig:"WEATHERDASH_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Duration is a time.Duration written as "1s" in TOML and the environment
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "weatherdash", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the default config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default file, falling back to
// DefaultConfig when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path. The API key is never
// written to disk.
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *config
	out.Weather.APIKey = ""

	data, err := toml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables onto cfg. Unset variables leave
// the existing values untouched.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("error processing environment: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.UI.Debounce.Duration < 0 {
		return fmt.Errorf("invalid config: debounce must not be negative")
	}
	if c.Weather.Timeout.Duration <= 0 {
		return fmt.Errorf("invalid config: timeout must be positive")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Weather: WeatherConfig{
			BaseURL: "https://api.weatherapi.com/v1",
			Timeout: Duration{10 * time.Second},
		},
		UI: UISettings{
			DefaultCity:    "New Delhi",
			Debounce:       Duration{time.Second},
			MinQueryLength: 2,
		},
		Log: LogSettings{
			File:  "weatherdash.log",
			Level: "info",
		},
	}
}
