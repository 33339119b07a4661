package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "config/config.yaml"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App         AppConfig         `yaml:"app" envconfig:"APP"`
	Server      ServerConfig      `yaml:"server" envconfig:"SERVER"`
	OpenWeather OpenWeatherConfig `yaml:"openweather" envconfig:"OPENWEATHER"`
	OpenMeteo   OpenMeteoConfig   `yaml:"openmeteo" envconfig:"OPENMETEO"`
	Log         LogConfig         `yaml:"log" envconfig:"LOG"`
	Sentry      SentryConfig      `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// OpenWeatherConfig holds the credential shared by the geocoding, forecast
// and air pollution endpoints. Timeout is in seconds and applies per call.
type OpenWeatherConfig struct {
	APIKey          string `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	GeoURL          string `yaml:"geo_url" envconfig:"GEO_URL"`
	ForecastURL     string `yaml:"forecast_url" envconfig:"FORECAST_URL"`
	AirPollutionURL string `yaml:"air_pollution_url" envconfig:"AIR_POLLUTION_URL"`
	Units           string `yaml:"units" envconfig:"UNITS"`
	Timeout         int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

// OpenMeteoConfig needs no credential.
type OpenMeteoConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then the YAML file at path, then the
// environment. A missing file is not an error.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envFile: ".env",
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// .env is optional; variables already set in the process win
	if _, err := os.Stat(p.envFile); err == nil {
		if err := godotenv.Load(p.envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", p.envFile, err)
		}
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if strings.TrimSpace(config.OpenWeather.APIKey) == "" {
		problems = append(problems, "openweather.api_key is required")
	}
	if config.OpenWeather.Timeout <= 0 || config.OpenMeteo.Timeout <= 0 {
		problems = append(problems, "provider timeouts must be positive")
	}
	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not supported", config.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     EnvDevelopment,
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		OpenWeather: OpenWeatherConfig{
			GeoURL:          "https://api.openweathermap.org/geo/1.0/direct",
			ForecastURL:     "https://api.openweathermap.org/data/2.5/forecast",
			AirPollutionURL: "https://api.openweathermap.org/data/2.5/air_pollution/forecast",
			Units:           "metric",
			Timeout:         10,
		},
		OpenMeteo: OpenMeteoConfig{
			BaseURL: "https://api.open-meteo.com/v1/forecast",
			Timeout: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

func (c *OpenWeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c *OpenMeteoConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
