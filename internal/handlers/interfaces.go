package handlers

import (
	"context"

	"github.com/bililens/backend/internal/videos"
)

// VideoAnalyzer resolves a shared Bilibili URL and returns its normalized summary.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) (videos.Summary, error)
}
