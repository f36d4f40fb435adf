package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Log   LogConfig
	Image ImageConfig
	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool
}

type LogConfig struct {
	Level  string
	Format string
}

type ImageConfig struct {
	JPEGQuality int
	AutoOrient  bool
}

const (
	DefaultJPEGQuality = 95
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

func Load(envFiles ...string) (*Config, error) {
	loaded := godotenv.Load(envFiles...) == nil

	cfg := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
			Format: strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		},
		Image: ImageConfig{
			JPEGQuality: ClampQuality(getEnvAsInt("JPEG_QUALITY", DefaultJPEGQuality)),
			AutoOrient:  getEnvAsBool("AUTO_ORIENT", false),
		},
		EnvFileLoaded: loaded,
	}

	return cfg, nil
}

// ClampQuality keeps a JPEG quality inside 1..100.
func ClampQuality(q int) int {
	return min(100, max(1, q))
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
