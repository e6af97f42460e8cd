package ctgov

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CTGOV_BASE_URL", "")
	t.Setenv("CTGOV_TIMEOUT", "")
	t.Setenv("CTGOV_USER_AGENT", "")

	cfg := LoadConfig()
	if cfg.BaseURL != "https://clinicaltrials.gov/api/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.UserAgent == "" {
		t.Error("UserAgent should have a default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CTGOV_BASE_URL", "http://localhost:9090/api/v2")
	t.Setenv("CTGOV_TIMEOUT", "5s")
	t.Setenv("CTGOV_USER_AGENT", "integration-test/0.1")

	cfg := LoadConfig()
	if cfg.BaseURL != "http://localhost:9090/api/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.UserAgent != "integration-test/0.1" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv("CTGOV_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("bad duration should fall back to default, got %v", cfg.Timeout)
	}
}
