package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "FINANCEBOOK_TIMEOUT", "FINANCEBOOK_PAGE_SIZE", "FINANCEBOOK_MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.PageSize)
	}
	if cfg.MaxUploadSize != 25*1024*1024 {
		t.Errorf("expected 25 MiB upload limit, got %d", cfg.MaxUploadSize)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("FINANCEBOOK_TIMEOUT", "soon")
	t.Setenv("FINANCEBOOK_PAGE_SIZE", "-5")
	t.Setenv("JWT_EXPIRES_IN", "forever")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.Timeout)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected fallback page size, got %d", cfg.PageSize)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected fallback JWT expiry, got %s", cfg.JWTExpirationDur)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FINANCEBOOK_API_URL", "https://books.example.com/api")
	t.Setenv("FINANCEBOOK_MAX_RETRIES", "5")
	t.Setenv("DB_DRIVER", "postgres")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIURL != "https://books.example.com/api" {
		t.Errorf("unexpected API URL %s", cfg.APIURL)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", cfg.MaxRetries)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DBDriver)
	}
}
