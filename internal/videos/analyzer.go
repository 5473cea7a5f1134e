package videos

import (
	"context"
	"log/slog"

	"github.com/bililens/backend/internal/logging"
)

// IDResolver maps raw user input to a BV identifier.
type IDResolver interface {
	Resolve(ctx context.Context, input string) (ID, error)
}

// Fetcher loads the summary for a resolved identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id ID) (Summary, error)
}

// Analyzer runs resolution and the metadata fetch in sequence.
type Analyzer struct {
	resolver IDResolver
	fetcher  Fetcher
}

// NewAnalyzer wires a resolver and fetcher together.
func NewAnalyzer(resolver IDResolver, fetcher Fetcher) *Analyzer {
	return &Analyzer{resolver: resolver, fetcher: fetcher}
}

// Analyze resolves rawURL and fetches its summary. The fetch is never
// attempted unless resolution produced a valid identifier.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (Summary, error) {
	if a == nil || a.resolver == nil || a.fetcher == nil {
		return Summary{}, ErrProviderUnavailable
	}

	resolveCtx, span := logging.StartSpan(ctx, "resolve_bvid")
	id, err := a.resolver.Resolve(resolveCtx, rawURL)
	span.End(err, slog.String("bvid", string(id)))
	if err != nil {
		return Summary{}, err
	}
	if !id.Valid() {
		return Summary{}, ErrNoIdentifier
	}

	fetchCtx, span := logging.StartSpan(ctx, "fetch_view", slog.String("bvid", string(id)))
	summary, err := a.fetcher.Fetch(fetchCtx, id)
	span.End(err)
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
