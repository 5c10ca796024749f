package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	RedisAddr     string
	RedisPassword string
	RedisCacheTTL time.Duration

	StoragePath string

	RateLimitRPS   float64
	RateLimitBurst int

	// Platform-wide pricing constants.
	CoachingRatePerHour float64
	CleaningFlatFee     float64
	PeakStartHour       int
	PeakEndHour         int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error

	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	// Redis is optional; empty REDIS_ADDR disables availability caching.
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisCacheTTL, err = getEnvAsDuration("REDIS_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.StoragePath = getEnv("STORAGE_PATH", "./data/photos")

	cfg.RateLimitRPS, err = getEnvAsFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}

	cfg.CoachingRatePerHour, err = getEnvAsFloat("COACHING_RATE_PER_HOUR", 300)
	if err != nil {
		return nil, err
	}
	cfg.CleaningFlatFee, err = getEnvAsFloat("CLEANING_FLAT_FEE", 200)
	if err != nil {
		return nil, err
	}
	cfg.PeakStartHour, err = getEnvAsInt("PEAK_START_HOUR", 18)
	if err != nil {
		return nil, err
	}
	cfg.PeakEndHour, err = getEnvAsInt("PEAK_END_HOUR", 22)
	if err != nil {
		return nil, err
	}
	if cfg.PeakStartHour > cfg.PeakEndHour {
		return nil, fmt.Errorf("PEAK_START_HOUR must not be after PEAK_END_HOUR")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set, otherwise the
// provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}
	return val, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}
	return val, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}
	return val, nil
}
