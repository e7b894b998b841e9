package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	Countdown     time.Duration // delay between start-race and the text reveal
	RoomRetention time.Duration
	SweepInterval time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "3001"),
		Countdown:     time.Duration(getEnvInt("COUNTDOWN_MS", 3500)) * time.Millisecond,
		RoomRetention: time.Duration(getEnvInt("ROOM_RETENTION_MIN", 60)) * time.Minute,
		SweepInterval: time.Duration(getEnvInt("SWEEP_INTERVAL_MIN", 10)) * time.Minute,
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
