package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the identities without which Load refuses to start.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CHANNEL_ID", "-1001234567890")
	t.Setenv("OPERATOR_ID", "987654321")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("GinMode=%q LogLevel=%q", cfg.GinMode, cfg.LogLevel)
	}
	if cfg.DBPath != "moviebot.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ResultCap != 20 || cfg.FreeResultCap != 2 {
		t.Fatalf("caps = %d/%d", cfg.ResultCap, cfg.FreeResultCap)
	}
	if cfg.ChannelID != -1001234567890 || cfg.OperatorID != 987654321 {
		t.Fatalf("identities = %d/%d", cfg.ChannelID, cfg.OperatorID)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("ReadTimeout = %v", cfg.ReadTimeout)
	}
}

func TestLoad_RequiresIdentities(t *testing.T) {
	t.Setenv("OPERATOR_ID", "987654321")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "CHANNEL_ID") {
		t.Fatalf("missing CHANNEL_ID: got %v", err)
	}

	t.Setenv("CHANNEL_ID", "-100123")
	t.Setenv("OPERATOR_ID", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "OPERATOR_ID") {
		t.Fatalf("missing OPERATOR_ID: got %v", err)
	}
}

func TestLoad_ValidatesCaps(t *testing.T) {
	setRequired(t)

	t.Setenv("RESULT_CAP", "0")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RESULT_CAP") {
		t.Fatalf("zero cap: got %v", err)
	}

	t.Setenv("RESULT_CAP", "10")
	t.Setenv("FREE_RESULT_CAP", "11")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "FREE_RESULT_CAP") {
		t.Fatalf("free cap above hard cap: got %v", err)
	}

	t.Setenv("FREE_RESULT_CAP", "10")
	if _, err := Load(); err != nil {
		t.Fatalf("free cap equal to hard cap is fine: %v", err)
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "bogus")
	t.Setenv("API_BASE_PATH", "api/v2/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Fatalf("bad log level: got %v", err)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example,")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("splitCSV = %v", got)
	}
	if splitCSV("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"/api/v1": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
