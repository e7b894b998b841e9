package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("COUNTDOWN_MS", "")
	t.Setenv("ROOM_RETENTION_MIN", "")
	t.Setenv("SWEEP_INTERVAL_MIN", "")

	cfg := Load()

	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3001")
	}
	if cfg.Countdown != 3500*time.Millisecond {
		t.Errorf("Countdown = %v, want %v", cfg.Countdown, 3500*time.Millisecond)
	}
	if cfg.RoomRetention != time.Hour {
		t.Errorf("RoomRetention = %v, want %v", cfg.RoomRetention, time.Hour)
	}
	if cfg.SweepInterval != 10*time.Minute {
		t.Errorf("SweepInterval = %v, want %v", cfg.SweepInterval, 10*time.Minute)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("COUNTDOWN_MS", "1000")
	t.Setenv("ROOM_RETENTION_MIN", "5")
	t.Setenv("SWEEP_INTERVAL_MIN", "1")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.Countdown != time.Second {
		t.Errorf("Countdown = %v, want %v", cfg.Countdown, time.Second)
	}
	if cfg.RoomRetention != 5*time.Minute {
		t.Errorf("RoomRetention = %v, want %v", cfg.RoomRetention, 5*time.Minute)
	}
	if cfg.SweepInterval != time.Minute {
		t.Errorf("SweepInterval = %v, want %v", cfg.SweepInterval, time.Minute)
	}
}

func TestLoad_InvalidCountdown(t *testing.T) {
	t.Setenv("COUNTDOWN_MS", "abc")

	cfg := Load()

	if cfg.Countdown != 3500*time.Millisecond {
		t.Errorf("Countdown = %v, want %v (fallback)", cfg.Countdown, 3500*time.Millisecond)
	}
}
