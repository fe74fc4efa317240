package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("Env = %q, want dev", cfg.Env)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.SummarizerTimeout != 30*time.Second {
		t.Fatalf("SummarizerTimeout = %v", cfg.SummarizerTimeout)
	}
	if len(cfg.CORSAllowOrigin) == 0 {
		t.Fatalf("CORSAllowOrigin is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SUMMARIZER_TIMEOUT", "45s")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("Env = %q, want production", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("CORSAllowOrigin = %v", cfg.CORSAllowOrigin)
	}
	if cfg.SummarizerTimeout != 45*time.Second {
		t.Fatalf("SummarizerTimeout = %v", cfg.SummarizerTimeout)
	}
	if cfg.DatabaseURL != "postgres://localhost/app" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SUMMARIZER_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.SummarizerTimeout != 30*time.Second {
		t.Fatalf("SummarizerTimeout = %v, want default", cfg.SummarizerTimeout)
	}
}
