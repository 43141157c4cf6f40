package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return NewConfig(config.DatabaseConfig{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          "5432",
		Username:      "remit",
		Password:      "secret",
		Database:      "remitbridge",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}, "info")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 0 }, "invalid port number"},
		{"missing user", func(c *Config) { c.Username = "" }, "database username is required"},
		{"missing name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"mysql", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"ssl", func(c *Config) { c.SSLMode = "always" }, "invalid SSL mode"},
		{"open conns", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"idle conns", func(c *Config) { c.MaxIdleConns = 0 }, "max idle connections"},
		{"timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"attempts", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=remit password=secret dbname=remitbridge sslmode=disable",
		validConfig().DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5433, ParsePort("5433"))
	assert.Equal(t, 0, ParsePort("pg"))
}
