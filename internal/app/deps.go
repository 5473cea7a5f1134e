package app

import (
	"net/http"

	"github.com/bililens/backend/internal/config"
	"github.com/bililens/backend/internal/handlers"
	"github.com/bililens/backend/internal/videos"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers.
// Resolver and API client share one http.Client; it follows redirects by default.
func buildDependencies(cfg config.Config) handlers.Dependencies {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	headers := videos.BrowserHeaders{UserAgent: cfg.UserAgent, Referer: cfg.Referer}

	resolver := videos.NewResolver(client, headers)
	fetcher := videos.NewClient(client, cfg.APIBaseURL, headers, cfg.Location)

	return handlers.Dependencies{
		Analyzer: videos.NewAnalyzer(resolver, fetcher),
	}
}
