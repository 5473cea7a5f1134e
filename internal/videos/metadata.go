package videos

import "net/http"

// Counter pairs an engagement statistic with its display form.
type Counter struct {
	Value   int64
	Display string
}

// NewCounter formats n with FormatCount.
func NewCounter(n int64) Counter {
	return Counter{Value: n, Display: FormatCount(n)}
}

// Summary is the normalized view of a single video.
type Summary struct {
	BVID        ID
	Title       string
	Author      string
	AuthorFace  string
	Cover       string
	Description string

	Views     Counter
	Danmaku   Counter
	Likes     Counter
	Coins     Counter
	Favorites Counter
	Shares    Counter
	Replies   Counter

	Duration     int64
	DurationText string
	PublishedAt  string
}

// BrowserHeaders are attached to every outbound request; the API rejects
// requests that do not look like they come from the website.
type BrowserHeaders struct {
	UserAgent string
	Referer   string
}

// Desktop Chrome profile used when no override is configured.
const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultReferer   = "https://www.bilibili.com"
)

// DefaultBrowserHeaders returns the desktop Chrome profile.
func DefaultBrowserHeaders() BrowserHeaders {
	return BrowserHeaders{UserAgent: DefaultUserAgent, Referer: DefaultReferer}
}

func (h BrowserHeaders) apply(req *http.Request) {
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}
	if h.Referer != "" {
		req.Header.Set("Referer", h.Referer)
	}
}
