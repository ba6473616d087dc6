package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	RoundDuration int // seconds
	TargetCount   int
	TargetRadius  int
	SpawnMargin   int
	WindowScale   int
	TPS           int
	Sound         bool
	DatabaseURL   string
	SpectatorAddr string
}

func Load() Config {
	cfg := Config{
		RoundDuration: getEnvInt("ROUND_DURATION", 30),
		TargetCount:   getEnvInt("TARGET_COUNT", 10),
		TargetRadius:  getEnvInt("TARGET_RADIUS", 15),
		SpawnMargin:   getEnvInt("SPAWN_MARGIN", 20),
		WindowScale:   getEnvInt("WINDOW_SCALE", 1),
		TPS:           getEnvInt("TPS", 60),
		Sound:         getEnvBool("SOUND", true),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SpectatorAddr: os.Getenv("SPECTATOR_ADDR"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt only accepts positive values; anything else yields the fallback.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "on", "true", "yes":
		return true
	case "0", "off", "false", "no":
		return false
	}
	return fallback
}
