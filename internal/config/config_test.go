package config

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "mmadmin")
}

func TestNewDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Booking.PrivateDeadlineDays != 7 {
		t.Errorf("PrivateDeadlineDays = %d, want 7", cfg.Booking.PrivateDeadlineDays)
	}

	morning, ok := cfg.Booking.BandDefaults[domain.BandMorning]
	if !ok {
		t.Fatal("missing morning band default")
	}
	if morning.StartTime != "10:00" || morning.EndTime != "14:00" {
		t.Errorf("morning window = %s-%s, want 10:00-14:00", morning.StartTime, morning.EndTime)
	}
}

func TestNewOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOOKING_DEADLINE_DAYS", "3")
	t.Setenv("BAND_EVENING_START", "18:30")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if cfg.Booking.PrivateDeadlineDays != 3 {
		t.Errorf("PrivateDeadlineDays = %d, want 3", cfg.Booking.PrivateDeadlineDays)
	}
	if got := cfg.Booking.BandDefaults[domain.BandEvening].StartTime; got != "18:30" {
		t.Errorf("evening start = %q, want 18:30", got)
	}
}

func TestNewRejectsBadDeadline(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOOKING_DEADLINE_DAYS", "soon")

	if _, err := New(); err == nil {
		t.Fatal("expected error for non-numeric BOOKING_DEADLINE_DAYS")
	}
}

func TestNewRequiresPostgresCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_USER", "")

	if _, err := New(); err == nil {
		t.Fatal("expected error for missing POSTGRES_USER")
	}
}
