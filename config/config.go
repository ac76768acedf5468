package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Driver selects the persistence backend.
type Driver string

const (
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// Config holds the configuration for the CommunityForge server and its dependencies.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// ServerURL is the base URL of the CommunityForge server.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// Database holds the persistence configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Discord holds the Discord webhook notification configuration.
	Discord *DiscordConfig `yaml:"discord" mapstructure:"discord"`
}

// DatabaseConfig holds the persistence configuration.
type DatabaseConfig struct {
	// Driver is the store backend, either "sqlite" or "memory".
	Driver Driver `yaml:"driver" mapstructure:"driver"`
	// Path is the directory holding the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// DiscordConfig holds the Discord webhook notification configuration.
type DiscordConfig struct {
	// Enabled indicates whether generated reports are forwarded to Discord.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// WebhookURL is the default webhook target. Submissions may override it
	// per request. A missing URL is not a startup error: it surfaces as a
	// request-time failure when a notification is actually attempted.
	WebhookURL string `yaml:"webhook_url" mapstructure:"webhook_url"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// If no config file is found, defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("COMMUNITYFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.communityforge")
		v.AddConfigPath("/etc/communityforge")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with COMMUNITYFORGE_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3003")
	v.SetDefault("log_level", "info")
	v.SetDefault("server_url", "http://localhost:3003")

	v.SetDefault("database.driver", string(DriverSQLite))
	v.SetDefault("database.path", "./data")

	v.SetDefault("discord.enabled", false)
	v.SetDefault("discord.webhook_url", "")
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing communityforge config")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.Database == nil {
		return fmt.Errorf("missing database config")
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required when the sqlite driver is used")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if c.Discord != nil && c.Discord.Enabled && c.Discord.WebhookURL == "" {
		log.Warn("Discord notifications enabled without a default webhook URL, submissions must provide their own")
	}

	return nil
}

// NotifierEnabled returns true if generated reports may be forwarded to Discord.
func (c *Config) NotifierEnabled() bool {
	return c.Discord != nil && c.Discord.Enabled
}
