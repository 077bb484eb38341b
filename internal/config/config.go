package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultMaxAttempts     = 100
	defaultCacheTTL        = time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// RetryConfig настройки повторных попыток генерации кода.
// MaxAttempts = 0 отключает ограничение.
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	SQLitePath      string         `env:"SQLITE_PATH"`
	RedisAddr       string         `env:"REDIS_ADDR"`
	CacheTTL        time.Duration  `env:"CACHE_TTL"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig    `envPrefix:"RETRY_"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		CacheTTL:        defaultCacheTTL,
		ShutdownTimeout: defaultShutdownTimeout,
		Retry: RetryConfig{
			MaxAttempts: defaultMaxAttempts,
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем флаги, затем переменные окружения.
// Файл .env, если он есть, подгружается в окружение до разбора.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Retry.MaxAttempts < 0 {
		return nil, fmt.Errorf("invalid retry max attempts: %d", cfg.Retry.MaxAttempts)
	}

	return cfg, nil
}

func parseFlags(cfg *Config, args []string) error {
	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fset.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fset.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fset.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "file storage path")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fset.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "SQLite database path")
	fset.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address for the mapping cache")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return nil
}
