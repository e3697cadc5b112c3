package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Tailor   TailorConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// TailorConfig carries the optional integrations. Everything here may be
// empty; the service then runs rule-based tailoring with in-memory stats.
type TailorConfig struct {
	GeminiAPIKey string
	OutputDir    string
	ChromePath   string
	VocabFile    string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type AuthConfig struct {
	JWTSecret string
}

const defaultOutputDir = "generated_resumes"

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Tailor = TailorConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		OutputDir:    opt("OUTPUT_DIR"),
		ChromePath:   opt("CHROME_PATH"),
		VocabFile:    opt("SKILL_VOCAB_FILE"),
	}
	if cfg.Tailor.OutputDir == "" {
		cfg.Tailor.OutputDir = defaultOutputDir
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   optInt32("DB_POOL_MAX_CONNS", 0),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Auth = AuthConfig{
		JWTSecret: opt("AUTH_JWT_SECRET"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func optInt32(key string, def int32) int32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n < 0 {
		return def
	}
	return int32(n)
}
