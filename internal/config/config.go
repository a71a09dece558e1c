package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Stats    StatsConfig    `mapstructure:"stats"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// AuthConfig holds JWT signing configuration for the admin console
type AuthConfig struct {
	SecretKey          string `mapstructure:"secret_key"`
	TokenExpiryMinutes int    `mapstructure:"token_expiry_minutes"`
}

// NotifyConfig holds the Gmail API configuration for sales notifications
type NotifyConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	FromEmail    string `mapstructure:"from_email"`
	SalesEmail   string `mapstructure:"sales_email"`
}

// StatsConfig holds the dashboard stats refresher configuration
type StatsConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()

	// Bind environment variables
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)

	viper.SetDefault("auth.token_expiry_minutes", 720)

	viper.SetDefault("notify.enabled", false)

	viper.SetDefault("stats.interval_minutes", 5)
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")

	// Auth
	viper.BindEnv("auth.secret_key", "AUTH_SECRET_KEY")
	viper.BindEnv("auth.token_expiry_minutes", "AUTH_TOKEN_EXPIRY_MINUTES")

	// Notify
	viper.BindEnv("notify.enabled", "NOTIFY_ENABLED")
	viper.BindEnv("notify.client_id", "NOTIFY_CLIENT_ID")
	viper.BindEnv("notify.client_secret", "NOTIFY_CLIENT_SECRET")
	viper.BindEnv("notify.refresh_token", "NOTIFY_REFRESH_TOKEN")
	viper.BindEnv("notify.from_email", "NOTIFY_FROM_EMAIL")
	viper.BindEnv("notify.sales_email", "NOTIFY_SALES_EMAIL")

	// Stats
	viper.BindEnv("stats.interval_minutes", "STATS_INTERVAL_MINUTES")
}

// GetDSN returns the database connection string. clientFoundRows makes
// UPDATE report matched rows instead of changed rows, so a same-value status
// update is not mistaken for a missing row.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host, user, and dbname are required")
	}

	if c.Auth.SecretKey == "" {
		return fmt.Errorf("auth secret key is required")
	}

	if c.Auth.TokenExpiryMinutes <= 0 {
		return fmt.Errorf("auth token expiry must be greater than 0")
	}

	if c.Notify.Enabled {
		if c.Notify.ClientID == "" || c.Notify.ClientSecret == "" || c.Notify.RefreshToken == "" {
			return fmt.Errorf("notification OAuth2 credentials are required when notifications are enabled")
		}
		if c.Notify.FromEmail == "" || c.Notify.SalesEmail == "" {
			return fmt.Errorf("notification from and sales addresses are required when notifications are enabled")
		}
	}

	if c.Stats.IntervalMinutes <= 0 {
		return fmt.Errorf("stats refresh interval must be greater than 0")
	}

	return nil
}
