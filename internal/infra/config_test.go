package infra

import (
	"testing"
	"time"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_CURRENCY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.DefaultCurrency != "IDR" {
		t.Fatalf("DefaultCurrency mismatch: got %q want %q", cfg.DefaultCurrency, "IDR")
	}
	if cfg.NonceTTL != 30*time.Minute {
		t.Fatalf("NonceTTL mismatch: got %s", cfg.NonceTTL)
	}
	if cfg.MailEnabled() {
		t.Fatal("expected mail to be disabled without SMTP_HOST")
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadConfigRequiresAuthSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("AUTH_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when AUTH_SECRET is missing")
	}
}

func TestLoadConfigReadsSMTPSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.MailEnabled() {
		t.Fatal("expected mail to be enabled")
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("SMTPPort mismatch: got %d want 2525", cfg.SMTPPort)
	}
}
