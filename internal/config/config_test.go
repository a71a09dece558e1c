package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidation(t *testing.T) {
	// Test valid configuration
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Database: DatabaseConfig{
			Host:   "localhost",
			User:   "test",
			DBName: "test",
		},
		Auth: AuthConfig{
			SecretKey:          "secret",
			TokenExpiryMinutes: 60,
		},
		Stats: StatsConfig{
			IntervalMinutes: 5,
		},
	}

	err := config.Validate()
	assert.NoError(t, err)

	// Test invalid configuration
	invalidConfig := &Config{
		Server: ServerConfig{
			Port: "",
		},
	}

	err = invalidConfig.Validate()
	assert.Error(t, err)
}

func TestConfigValidationNotifyCredentials(t *testing.T) {
	config := &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Host: "localhost", User: "u", DBName: "d"},
		Auth:     AuthConfig{SecretKey: "secret", TokenExpiryMinutes: 60},
		Stats:    StatsConfig{IntervalMinutes: 5},
		Notify:   NotifyConfig{Enabled: true},
	}

	err := config.Validate()
	assert.Error(t, err)

	config.Notify.ClientID = "id"
	config.Notify.ClientSecret = "secret"
	config.Notify.RefreshToken = "token"
	config.Notify.FromEmail = "noreply@example.com"
	config.Notify.SalesEmail = "sales@example.com"

	err = config.Validate()
	assert.NoError(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
	}

	dsn := config.GetDSN()
	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"
	assert.Equal(t, expected, dsn)

	// Matched-rows reporting is what lets the repository treat zero affected
	// rows as "no such inquiry" even for a same-value status update.
	assert.Contains(t, dsn, "clientFoundRows=true")
}
