package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	// Test default values
	assert.Equal(t, "weather-dashboard", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "metric", config.OpenWeather.Units)
	assert.Equal(t, 10, config.OpenWeather.Timeout)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", config.OpenMeteo.BaseURL)
	assert.Equal(t, "test-key", config.OpenWeather.APIKey)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	t.Setenv("OPENWEATHER_TIMEOUT", "3")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "env-key", config.OpenWeather.APIKey)
	assert.Equal(t, 3, config.OpenWeather.Timeout)
	assert.True(t, config.IsProduction())
}

func TestConfigFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := []byte(`
app:
  name: from-file
server:
  port: "7070"
openweather:
  api_key: file-key
  units: imperial
`)
	require.NoError(t, os.WriteFile(path, yamlData, 0o600))

	t.Setenv("SERVER_PORT", "6060")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.App.Name)
	assert.Equal(t, "6060", config.Server.Port)
	assert.Equal(t, "file-key", config.OpenWeather.APIKey)
	assert.Equal(t, "imperial", config.OpenWeather.Units)
	// untouched by the file
	assert.Equal(t, 120, config.Server.IdleTimeout)
}

func TestConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	config := validConfig()
	assert.NoError(t, provider.Validate(config))

	invalidConfig := validConfig()
	invalidConfig.App.Name = ""
	err := provider.Validate(invalidConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	missingKey := validConfig()
	missingKey.OpenWeather.APIKey = "  "
	err = provider.Validate(missingKey)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "openweather.api_key is required")

	badLevel := validConfig()
	badLevel.Log.Level = "verbose"
	err = provider.Validate(badLevel)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `log.level "verbose" is not supported`)
}

func TestConfigHelperMethods(t *testing.T) {
	config := validConfig()

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
	assert.Equal(t, "30s", config.OpenWeather.RequestTimeout().String())
	assert.Equal(t, "10s", config.OpenMeteo.RequestTimeout().String())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	failing := &MockConfigProvider{err: errors.New("boom")}
	_, err = NewConfigWithProvider(failing)
	assert.EqualError(t, err, "boom")
}

func TestConfigFileLoading(t *testing.T) {
	// Tests run inside config/, so the shipped file is next to them
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "weather-dashboard", config.App.Name)
	assert.Equal(t, "YOUR-API-KEY-HERE", config.OpenWeather.APIKey)
	assert.Equal(t, "https://api.openweathermap.org/geo/1.0/direct", config.OpenWeather.GeoURL)
}

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		OpenWeather: OpenWeatherConfig{
			APIKey:  "test-key",
			Timeout: 30,
		},
		OpenMeteo: OpenMeteoConfig{
			Timeout: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
