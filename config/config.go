package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8083"
	defaultSSLMode      = "require"
	defaultUserCacheTTL = 10 * time.Minute
)

// Config gom các biến môi trường ứng dụng cần
type Config struct {
	Env           string
	Port          string
	Timezone      string
	SSLMode       string
	AutoMigrate   bool
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	UserCacheTTL  time.Duration
	LogLevel      string
}

// LoadEnv nạp file .env nếu có; thiếu file thì dùng biến môi trường hệ thống
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           strings.ToLower(GetEnv("ENV")),
		Port:          getEnvDefault("PORT", defaultPort),
		Timezone:      GetEnv("APP_TIMEZONE"),
		SSLMode:       getEnvDefault("DB_SSLMODE", defaultSSLMode),
		AutoMigrate:   true,
		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisUser:     GetEnv("REDIS_USER"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		UserCacheTTL:  defaultUserCacheTTL,
		LogLevel:      GetEnv("LOG_LEVEL"),
	}

	if v := GetEnv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.AutoMigrate = b
	}

	if v := GetEnv("USER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid USER_CACHE_TTL %q: %w", v, err)
		}
		cfg.UserCacheTTL = d
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location is the zone that decides what "today" means. Empty APP_TIMEZONE
// falls back to the server's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
