package ctgov

import (
	"os"
	"time"
)

const defaultBaseURL = "https://clinicaltrials.gov/api/v2"

// Config holds ClinicalTrials.gov connection settings.
type Config struct {
	// BaseURL is the registry API endpoint.
	BaseURL string

	// Timeout for API requests.
	Timeout time.Duration

	// UserAgent identifies the client to the registry.
	UserAgent string
}

// LoadConfig loads configuration from environment variables. The registry
// is public and unauthenticated, so every setting has a working default.
func LoadConfig() *Config {
	baseURL := os.Getenv("CTGOV_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := 30 * time.Second
	if t := os.Getenv("CTGOV_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("CTGOV_USER_AGENT")
	if userAgent == "" {
		userAgent = "clinicaltrials-mcp-server/1.0"
	}

	return &Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}
