package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "STORE_BACKEND", "RECEIPT_BASE_URL", "NOTIFY_QUEUE_SIZE", "NOTIFY_TIMEOUT", "SHUTDOWN_TIMEOUT", "FLUSH_SCHEDULE", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN"} {
			t.Setenv(k, "")
		}
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" || cfg.StoreBackend != StoreBackendFile || cfg.ReceiptBaseURL != "http://localhost:8080" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.NotifyQueueSize != 100 || cfg.NotifyTimeout != 10*time.Second || cfg.FlushSchedule != "@every 5m" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.MessagingEnabled() {
			t.Fatalf("messaging must be disabled without credentials")
		}
	})

	t.Run("invalid backend", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "redis")
		if _, err := Load(); !errors.Is(err, ErrInvalidStoreBackend) {
			t.Fatalf("expected ErrInvalidStoreBackend, got %v", err)
		}
	})

	t.Run("postgres requires DB_URL", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "postgres")
		t.Setenv("DB_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("NOTIFY_QUEUE_SIZE", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected queue size error")
		}
		t.Setenv("NOTIFY_QUEUE_SIZE", "")
		t.Setenv("NOTIFY_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}
