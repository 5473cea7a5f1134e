package videos

import (
	"context"
	"errors"
	"testing"
)

type resolverStub struct {
	id    ID
	err   error
	input string
}

func (s *resolverStub) Resolve(_ context.Context, input string) (ID, error) {
	s.input = input
	return s.id, s.err
}

type fetcherStub struct {
	summary Summary
	err     error
	calls   int
	gotID   ID
}

func (s *fetcherStub) Fetch(_ context.Context, id ID) (Summary, error) {
	s.calls++
	s.gotID = id
	return s.summary, s.err
}

func TestAnalyzerAnalyze(t *testing.T) {
	resolver := &resolverStub{id: "BV1xx411c7mD"}
	fetcher := &fetcherStub{summary: Summary{BVID: "BV1xx411c7mD", Title: "ok"}}
	analyzer := NewAnalyzer(resolver, fetcher)

	summary, err := analyzer.Analyze(context.Background(), "https://b23.tv/abc")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if summary.Title != "ok" {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if resolver.input != "https://b23.tv/abc" || fetcher.gotID != "BV1xx411c7mD" {
		t.Fatalf("unexpected wiring: resolver=%q fetcher=%q", resolver.input, fetcher.gotID)
	}
}

func TestAnalyzerStopsOnResolveFailure(t *testing.T) {
	cases := []struct {
		name     string
		resolver *resolverStub
		wantErr  error
	}{
		{"noIdentifier", &resolverStub{err: ErrNoIdentifier}, ErrNoIdentifier},
		{"invalidIdentifier", &resolverStub{id: "b23xyz"}, ErrNoIdentifier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &fetcherStub{}
			_, err := NewAnalyzer(tc.resolver, fetcher).Analyze(context.Background(), "whatever")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if fetcher.calls != 0 {
				t.Fatalf("fetch must not run after a failed resolve, got %d calls", fetcher.calls)
			}
		})
	}
}

func TestAnalyzerPropagatesFetchErrors(t *testing.T) {
	upstream := &UpstreamError{Code: -400, Message: "请求错误"}
	analyzer := NewAnalyzer(&resolverStub{id: "BV1xx411c7mD"}, &fetcherStub{err: upstream})

	_, err := analyzer.Analyze(context.Background(), "BV1xx411c7mD")
	var got *UpstreamError
	if !errors.As(err, &got) || got != upstream {
		t.Fatalf("expected upstream error to propagate, got %v", err)
	}
}

func TestAnalyzerUnavailable(t *testing.T) {
	var nilAnalyzer *Analyzer
	if _, err := nilAnalyzer.Analyze(context.Background(), "x"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := NewAnalyzer(nil, &fetcherStub{}).Analyze(context.Background(), "x"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
