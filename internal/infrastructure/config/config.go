package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds the SQLite store configuration
type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// BackupConfig holds the remote backup repository configuration.
// An empty token disables mirroring entirely.
type BackupConfig struct {
	Owner   string        `mapstructure:"owner"`
	Repo    string        `mapstructure:"repo"`
	Branch  string        `mapstructure:"branch"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether a credential is configured for the backup store.
func (c BackupConfig) Enabled() bool {
	return strings.TrimSpace(c.Token) != ""
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("database.path", "prepnet.db")
	viper.SetDefault("database.log_sql", false)

	viper.SetDefault("backup.owner", "")
	viper.SetDefault("backup.repo", "")
	viper.SetDefault("backup.branch", "main")
	viper.SetDefault("backup.token", "")
	viper.SetDefault("backup.timeout", "10s")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}
