package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	LogLevel slog.Level
	LogJSON  bool
}

func New() Config {
	return Config{
		LogLevel: getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		LogJSON:  getEnvBool("LOG_JSON", true),
	}
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}

	return l
}
