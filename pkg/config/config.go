package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigFile is used when no --config flag is given
const DefaultConfigFile = ".storychat/settings.yaml"

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Images  ImagesConfig  `mapstructure:"images"`
	Render  RenderConfig  `mapstructure:"render"`
	Stub    StubConfig    `mapstructure:"stub"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// ChatConfig holds the outbound chat endpoint configuration
type ChatConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	Timeout    time.Duration `mapstructure:"-"`
	TimeoutStr string        `mapstructure:"timeout"` // For parsing string duration
}

// ImagesConfig controls how reply images are fetched and previewed
type ImagesConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	MaxBytesStr  string `mapstructure:"max_bytes"`
	MaxBytes     int64  `mapstructure:"-"`
	PreviewWidth int    `mapstructure:"preview_width"`
}

// RenderConfig holds transcript rendering options
type RenderConfig struct {
	Markdown bool `mapstructure:"markdown"`
}

// StubConfig holds the development stub server configuration
type StubConfig struct {
	Addr string `mapstructure:"addr"`
}

var (
	// Global config instance
	cfg *Config
)

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// IsLoaded reports whether Load has succeeded at least once
func IsLoaded() bool {
	return cfg != nil
}

// Load loads configuration from file and environment
func Load(cfgFile string) (*Config, error) {
	// A missing .env is the normal case
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./.storychat")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.AutomaticEnv()
	bindEnvironmentVariables()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := processDurations(loaded); err != nil {
		return nil, fmt.Errorf("failed to process durations: %w", err)
	}
	if err := processSizes(loaded); err != nil {
		return nil, fmt.Errorf("failed to process sizes: %w", err)
	}
	if loaded.Chat.Endpoint == "" {
		return nil, fmt.Errorf("chat.endpoint must not be empty")
	}

	cfg = loaded
	return cfg, nil
}

// setDefaults sets all default configuration values on v
func setDefaults(v *viper.Viper) {
	v.SetDefault("chat.endpoint", "http://localhost:5000/api/chat")
	v.SetDefault("chat.timeout", "0s")

	v.SetDefault("images.enabled", true)
	v.SetDefault("images.max_bytes", "10MB")
	v.SetDefault("images.preview_width", 32)

	v.SetDefault("render.markdown", true)

	v.SetDefault("logging.log_file", "./.storychat/system.log")
	v.SetDefault("logging.preserve", false)
	v.SetDefault("logging.level", "info")

	v.SetDefault("stub.addr", ":5000")
}

// bindEnvironmentVariables binds STORYCHAT_ prefixed variables to Viper keys
func bindEnvironmentVariables() {
	viper.BindEnv("chat.endpoint", "STORYCHAT_ENDPOINT")
	viper.BindEnv("chat.timeout", "STORYCHAT_TIMEOUT")
	viper.BindEnv("images.enabled", "STORYCHAT_IMAGES_ENABLED")
	viper.BindEnv("images.max_bytes", "STORYCHAT_IMAGES_MAX_BYTES")
	viper.BindEnv("render.markdown", "STORYCHAT_MARKDOWN")
	viper.BindEnv("logging.log_file", "STORYCHAT_LOG_FILE")
	viper.BindEnv("logging.level", "STORYCHAT_LOG_LEVEL")
	viper.BindEnv("logging.preserve", "STORYCHAT_LOG_PRESERVE")
	viper.BindEnv("stub.addr", "STORYCHAT_STUB_ADDR")
}

// processDurations converts string durations to time.Duration
func processDurations(c *Config) error {
	if c.Chat.TimeoutStr == "" {
		c.Chat.Timeout = 0
		return nil
	}
	d, err := time.ParseDuration(c.Chat.TimeoutStr)
	if err != nil {
		return fmt.Errorf("invalid chat.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("invalid chat.timeout: %s is negative", c.Chat.TimeoutStr)
	}
	c.Chat.Timeout = d
	return nil
}

// processSizes converts human readable sizes like "10MB" to bytes
func processSizes(c *Config) error {
	if c.Images.MaxBytesStr == "" {
		c.Images.MaxBytes = 10 * humanize.MByte
		return nil
	}
	n, err := humanize.ParseBytes(c.Images.MaxBytesStr)
	if err != nil {
		return fmt.Errorf("invalid images.max_bytes: %w", err)
	}
	c.Images.MaxBytes = int64(n)
	return nil
}

// GetConfigFileUsed returns the path to the config file being used
func GetConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// InitializeDefaults writes a settings file holding the default values to
// path. An existing file is left untouched.
func InitializeDefaults(path string) error {
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write default configuration: %w", err)
	}
	return nil
}
