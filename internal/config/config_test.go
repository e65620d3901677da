package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Development with defaults",
			config: Config{
				Env:           "development",
				Port:          "5555",
				SessionSecret: "your-secret-key-change-in-production",
			},
			expectError: false,
		},
		{
			name: "Missing port",
			config: Config{
				Env:           "development",
				SessionSecret: "secret",
			},
			expectError: true,
		},
		{
			name: "Missing session secret",
			config: Config{
				Env:  "development",
				Port: "5555",
			},
			expectError: true,
		},
		{
			name: "Production with default session secret",
			config: Config{
				Env:           "production",
				Port:          "5555",
				SessionSecret: "your-secret-key-change-in-production",
				DBPassword:    "strong-password",
			},
			expectError: true,
		},
		{
			name: "Production with short session secret",
			config: Config{
				Env:           "production",
				Port:          "5555",
				SessionSecret: "short",
				DBPassword:    "strong-password",
			},
			expectError: true,
		},
		{
			name: "Production with default DB password",
			config: Config{
				Env:           "production",
				Port:          "5555",
				SessionSecret: "secure-secret-at-least-32-chars-long",
				DBPassword:    "password",
			},
			expectError: true,
		},
		{
			name: "Production fully configured",
			config: Config{
				Env:           "production",
				Port:          "5555",
				SessionSecret: "secure-secret-at-least-32-chars-long",
				DBPassword:    "strong-password",
				DBSSLMode:     "require",
			},
			expectError: false,
		},
		{
			name: "Prod alias applies production rules",
			config: Config{
				Env:           "prod",
				Port:          "5555",
				SessionSecret: "your-secret-key-change-in-production",
				DBPassword:    "strong-password",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	// Run from an empty directory so no config file is picked up
	t.Chdir(t.TempDir())

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5555", c.Port)
	assert.Equal(t, "recipebook", c.DBName)
	assert.Equal(t, "localhost", c.DBHost)
	assert.Equal(t, "localhost:6379", c.RedisURL)
	assert.Equal(t, "development", c.Env)
	assert.False(t, c.TracingEnabled)
	assert.Equal(t, "stdout", c.TracingExport)
	assert.Equal(t, 1.0, c.TracingRatio)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir())

	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "recipebook_test")
	t.Setenv("SESSION_SECRET", "env-provided-secret")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "recipebook_test", c.DBName)
	assert.Equal(t, "env-provided-secret", c.SessionSecret)
}

func TestLoadConfig_File(t *testing.T) {
	defer viper.Reset()

	dir := t.TempDir()
	data, err := yaml.Marshal(map[string]any{
		"PORT":             "9090",
		"DB_NAME":          "recipebook_file",
		"SESSION_SECRET":   "file-provided-secret",
		"TRACING_ENABLED":  true,
		"TRACING_EXPORTER": "otlp",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), data, 0o644))
	t.Chdir(dir)

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "recipebook_file", c.DBName)
	assert.Equal(t, "file-provided-secret", c.SessionSecret)
	assert.True(t, c.TracingEnabled)
	assert.Equal(t, "otlp", c.TracingExport)
}
