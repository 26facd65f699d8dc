package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LogLevel string
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	Charset      string
	MaxIdleConns int
}

// Load reads envFile (when it exists) into the process environment and builds
// the configuration from it. Variables already set in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	driver := getEnv("DB_DRIVER", DriverMySQL)
	defaultPort := 3306
	if driver == DriverPostgres {
		defaultPort = 5432
	}

	port, err := getEnvInt("DB_PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	idle, err := getEnvInt("DB_MAX_IDLE_CONNS", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Driver:       driver,
			DSN:          os.Getenv("DATABASE_DSN"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         port,
			User:         getEnv("DB_USER", "api_user"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         getEnv("DB_NAME", "mydb"),
			Charset:      getEnv("DB_CHARSET", "utf8mb4"),
			MaxIdleConns: idle,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
