package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	os.Setenv("MONGODB_DATABASE", "agency_test")
	os.Setenv("CORS_ORIGINS", "https://agency.example, https://www.agency.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "agency_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 allowed origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[1] != "https://www.agency.example" {
		t.Fatalf("origins not trimmed: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestSplitOriginsDefaults(t *testing.T) {
	got := splitOrigins("")
	if len(got) != 1 || got[0] != "*" {
		t.Fatalf("empty origin list should fall back to wildcard, got %v", got)
	}
}
