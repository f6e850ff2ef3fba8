package module

import (
	"time"

	"devfeed/internal/adapters/github"
	"devfeed/internal/platform/config"
)

// Options configures the three upstream sources
type Options struct {
	GitHubUsername     string
	GitHubToken        string
	GitHubBaseURL      string
	GitHubLanguagesTTL time.Duration

	StackOverflowUserID  string
	StackOverflowKey     string
	StackOverflowSite    string
	StackOverflowBaseURL string

	DevToUsername string
	DevToAPIKey   string
	DevToBaseURL  string

	// UpstreamTimeout bounds a single upstream request
	UpstreamTimeout time.Duration
}

// FromConfig reads GITHUB_, STACKOVERFLOW_ and DEVTO_ settings
// the blog username falls back to MEDIUM_USERNAME for older deployments
func FromConfig(cfg config.Conf) Options {
	gh := cfg.Prefix("GITHUB_")
	so := cfg.Prefix("STACKOVERFLOW_")
	dt := cfg.Prefix("DEVTO_")
	return Options{
		GitHubUsername:     gh.MayString("USERNAME", ""),
		GitHubToken:        gh.MayString("TOKEN", ""),
		GitHubBaseURL:      gh.MayString("BASE_URL", ""),
		GitHubLanguagesTTL: gh.MayTTL("LANGUAGES_TTL", github.DefaultLanguagesTTL),

		StackOverflowUserID:  so.MayString("USER_ID", ""),
		StackOverflowKey:     so.MayString("KEY", ""),
		StackOverflowSite:    so.MayString("SITE", "stackoverflow"),
		StackOverflowBaseURL: so.MayString("BASE_URL", ""),

		DevToUsername: cfg.FirstString("", "DEVTO_USERNAME", "MEDIUM_USERNAME"),
		DevToAPIKey:   dt.MayString("API_KEY", ""),
		DevToBaseURL:  dt.MayString("BASE_URL", ""),

		UpstreamTimeout: cfg.MayDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}
