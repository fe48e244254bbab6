package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

// Backend is the hotel management REST API the gateway fronts.
type Backend struct {
	BaseURL        string `mapstructure:"base_url"`
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// RatesAPI serves the exchange-rate table.
type RatesAPI struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Currency struct {
	Base                   string `mapstructure:"base"`
	RefreshIntervalSeconds int    `mapstructure:"refresh_interval_seconds"`
	QuoteDebounceMillis    int    `mapstructure:"quote_debounce_ms"`
	QuoteCacheSize         int64  `mapstructure:"quote_cache_size"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Backend    Backend    `mapstructure:"backend"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Currency   Currency   `mapstructure:"currency"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("backend.timeout_seconds", 10)
	viper.SetDefault("rates_api.timeout_seconds", 10)
	viper.SetDefault("currency.base", "CZK")
	viper.SetDefault("currency.refresh_interval_seconds", 600)
	viper.SetDefault("currency.quote_debounce_ms", 300)
	viper.SetDefault("currency.quote_cache_size", 1024)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// backend env vars
	_ = viper.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	_ = viper.BindEnv("backend.token", "BACKEND_TOKEN")
	_ = viper.BindEnv("backend.timeout_seconds", "BACKEND_TIMEOUT_SECONDS")

	// rates api env vars
	_ = viper.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = viper.BindEnv("rates_api.timeout_seconds", "RATES_API_TIMEOUT_SECONDS")

	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
