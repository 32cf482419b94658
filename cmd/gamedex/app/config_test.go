package app

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_OUTPUT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.LogFormat != "auto" {
		t.Errorf("LogFormat = %s, want auto", cfg.LogFormat)
	}
	if cfg.LogOutput != "stderr" {
		t.Errorf("LogOutput = %s, want stderr", cfg.LogOutput)
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %s, want empty (resolved later by precedence)", cfg.LogLevel)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.LogFormat)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("GAMEDEX_TEST_KEY", "set")
	if got := getEnvOrDefault("GAMEDEX_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("getEnvOrDefault = %s, want set", got)
	}
	if got := getEnvOrDefault("GAMEDEX_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault = %s, want fallback", got)
	}
}
