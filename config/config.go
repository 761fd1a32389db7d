package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/varaeff/wordcheck.api/enums"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	ListenAddr              string
	EnableClipboard         bool
	EnableLanguageDetection bool
	DefaultMode             enums.Mode
	MaxBodyBytes            int64
	AppEnv                  string // EnvDevelopment or EnvProduction
	LogLevel                slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.ListenAddr = loadOptional("LISTEN_ADDR", "127.0.0.1:8080")
	cfg.EnableClipboard = loadBool("ENABLE_CLIPBOARD", true)
	cfg.EnableLanguageDetection = loadBool("ENABLE_LANGUAGE_DETECTION", true)
	cfg.MaxBodyBytes = int64(loadInt("MAX_BODY_BYTES", 4<<20))

	mode, err := enums.ParseMode(loadOptional("DEFAULT_MODE", string(enums.ModeManuscript)))
	if err != nil {
		slog.Error("Invalid DEFAULT_MODE", "error", err)
		mode = enums.ModeManuscript
	}
	cfg.DefaultMode = mode

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Error("Invalid boolean env var, using default", "key", key, "value", value)
		return defaultValue
	}
	return b
}

func loadInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Error("Invalid integer env var, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
