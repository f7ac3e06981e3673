package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DropDelay  time.Duration
	SlideDelay time.Duration
	WinPause   time.Duration
	Animate    bool
	Color      bool
	LogLevel   string
	LogFile    string
}

// LoadConfig reads an optional .env file and the environment. Every key has a
// default so the game runs with no environment at all.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("component", "config").Msg("ignoring unreadable .env file")
	}

	_, noColor := os.LookupEnv("NO_COLOR")

	return &Config{
		DropDelay:  GetEnvAsDuration("CONNECT4_DROP_DELAY_MS", 50),
		SlideDelay: GetEnvAsDuration("CONNECT4_SLIDE_DELAY_MS", 125),
		WinPause:   GetEnvAsDuration("CONNECT4_WIN_PAUSE_MS", 500),
		Animate:    GetEnvAsBool("CONNECT4_ANIMATE", true),
		Color:      !noColor,
		LogLevel:   GetEnv("LOG_LEVEL", "warn"),
		LogFile:    GetEnv("CONNECT4_LOG_FILE", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a millisecond count. Negative values fall back to the default.
func GetEnvAsDuration(key string, defaultMillis int) time.Duration {
	ms := GetEnvAsInt(key, defaultMillis)
	if ms < 0 {
		log.Warn().Str("component", "config").Str("key", key).Int("value", ms).Int("default", defaultMillis).Msg("negative duration, using default")
		ms = defaultMillis
	}
	return time.Duration(ms) * time.Millisecond
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}
