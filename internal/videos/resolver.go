package videos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bililens/backend/internal/logging"
)

// DefaultShortLinkHosts are the hosts Bilibili uses for shortened share links.
var DefaultShortLinkHosts = []string{"b23.tv", "bili2233.cn"}

const maxLandingPageBytes = 2 << 20

// Resolver turns user input into a BV identifier, following short links
// when necessary.
type Resolver struct {
	HTTP           *http.Client
	Headers        BrowserHeaders
	ShortLinkHosts []string
}

// NewResolver constructs a Resolver that follows Bilibili short links with client.
func NewResolver(client *http.Client, headers BrowserHeaders) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{
		HTTP:           client,
		Headers:        headers,
		ShortLinkHosts: DefaultShortLinkHosts,
	}
}

// Resolve extracts the BV identifier from input. Short links are expanded
// first; everything else is matched without touching the network.
func (r *Resolver) Resolve(ctx context.Context, input string) (ID, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrNoIdentifier
	}

	link, ok := r.shortLink(input)
	if !ok {
		if id, ok := ExtractID(input); ok {
			return id, nil
		}
		return "", ErrNoIdentifier
	}

	candidates, err := r.follow(ctx, link)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if id, ok := ExtractID(c); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: short link %s", ErrNoIdentifier, link)
}

// follow GETs the short link and returns the final URL followed by any
// canonical URLs advertised by the landing page.
func (r *Resolver) follow(ctx context.Context, link string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("build short link request: %w", err)
	}
	r.Headers.apply(req)

	client := r.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "resolve short link", URL: link, Err: err}
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	logging.FromContext(ctx).Info("short link resolved", "from", link, "to", final, "status", resp.StatusCode)

	candidates := []string{final}
	if _, ok := ExtractID(final); ok {
		return candidates, nil
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxLandingPageBytes))
	if err != nil {
		return nil, &TransportError{Op: "read landing page", URL: final, Err: err}
	}
	return append(candidates, canonicalURLs(doc)...), nil
}

var canonicalSelectors = []struct {
	selector string
	attr     string
}{
	{`link[rel="canonical"]`, "href"},
	{`meta[property="og:url"]`, "content"},
	{`meta[itemprop="url"]`, "content"},
}

func canonicalURLs(doc *goquery.Document) []string {
	var out []string
	for _, s := range canonicalSelectors {
		doc.Find(s.selector).Each(func(_ int, sel *goquery.Selection) {
			if v, ok := sel.Attr(s.attr); ok && strings.TrimSpace(v) != "" {
				out = append(out, strings.TrimSpace(v))
			}
		})
	}
	return out
}

// shortLink finds the first URL in input whose host is a short-link host.
// Share text copied from the app wraps the link in a title, so every
// whitespace separated field is inspected.
func (r *Resolver) shortLink(input string) (string, bool) {
	hosts := r.ShortLinkHosts
	if hosts == nil {
		hosts = DefaultShortLinkHosts
	}

	for _, field := range strings.Fields(input) {
		matched := false
		for _, host := range hosts {
			if strings.Contains(field, host) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		candidate := field
		if i := strings.Index(candidate, "http"); i >= 0 {
			candidate = candidate[i:]
		} else {
			candidate = strings.TrimLeft(candidate, "【[(（「“\"'")
			candidate = "https://" + candidate
		}
		candidate = strings.TrimRight(candidate, "，。！、）)】」”\"'")

		u, err := url.Parse(candidate)
		if err != nil || u.Host == "" {
			continue
		}
		if hostMatches(u.Hostname(), hosts) {
			return u.String(), true
		}
	}
	return "", false
}

func hostMatches(hostname string, hosts []string) bool {
	hostname = strings.ToLower(hostname)
	for _, h := range hosts {
		h = strings.ToLower(h)
		if hostname == h || strings.HasSuffix(hostname, "."+h) {
			return true
		}
	}
	return false
}
