package config

import (
	"os"
	"strconv"

	"github.com/adamspd/bible-quiz-engine/utils"
	"github.com/joho/godotenv"
)

// Config carries everything the engine reads from the environment.
type Config struct {
	DBPath              string
	DefaultLanguage     string
	SoundDefault        bool
	AutoReset           bool
	AdvanceDelaySeconds int
}

// Load reads an optional .env file, then the environment, falling back to
// documented defaults. It never fails: a missing .env is the normal case.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		utils.LogStartup("Loaded configuration from .env file")
	}

	cfg := &Config{
		DBPath:              GetEnvOrDefault("QUIZ_DB_PATH", "./quiz_progress.db"),
		DefaultLanguage:     GetEnvOrDefault("QUIZ_DEFAULT_LANGUAGE", "it"),
		SoundDefault:        GetEnvBool("QUIZ_SOUND_DEFAULT", true),
		AutoReset:           GetEnvBool("QUIZ_AUTO_RESET", true),
		AdvanceDelaySeconds: GetEnvInt("QUIZ_ADVANCE_DELAY_SECONDS", 2),
	}
	if cfg.AdvanceDelaySeconds < 1 {
		cfg.AdvanceDelaySeconds = 1
	}

	utils.LogStartup("Config: db=%s language=%s sound=%t auto_reset=%t advance_delay=%ds",
		cfg.DBPath, cfg.DefaultLanguage, cfg.SoundDefault, cfg.AutoReset, cfg.AdvanceDelaySeconds)
	return cfg
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
