package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPIBaseURL is the public Bilibili API host.
	DefaultAPIBaseURL = "https://api.bilibili.com"
	viewPath          = "/x/web-interface/view"
	maxViewBodyBytes  = 4 << 20

	defaultTitle       = "未知标题"
	defaultAuthor      = "未知UP主"
	defaultDescription = "暂无简介"
	defaultAPIMessage  = "未知错误"
)

// Client fetches video details from the Bilibili view API.
type Client struct {
	HTTP     *http.Client
	BaseURL  string
	Headers  BrowserHeaders
	Location *time.Location
}

// NewClient constructs a view API client. An empty baseURL targets DefaultAPIBaseURL.
func NewClient(client *http.Client, baseURL string, headers BrowserHeaders, loc *time.Location) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultAPIBaseURL
	}
	if loc == nil {
		loc = DefaultLocation()
	}
	return &Client{
		HTTP:     client,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Headers:  headers,
		Location: loc,
	}
}

// viewResponse mirrors the parts of the view API payload we use. Pointer
// fields distinguish an absent key from a zero value.
type viewResponse struct {
	Code    *int      `json:"code"`
	Message *string   `json:"message"`
	Data    *viewData `json:"data"`
}

type viewData struct {
	Title    *string    `json:"title"`
	Pic      *string    `json:"pic"`
	Desc     *string    `json:"desc"`
	Duration int64      `json:"duration"`
	Pubdate  int64      `json:"pubdate"`
	Owner    *viewOwner `json:"owner"`
	Stat     *viewStat  `json:"stat"`
}

type viewOwner struct {
	Name *string `json:"name"`
	Face *string `json:"face"`
}

type viewStat struct {
	View     int64 `json:"view"`
	Danmaku  int64 `json:"danmaku"`
	Reply    int64 `json:"reply"`
	Favorite int64 `json:"favorite"`
	Coin     int64 `json:"coin"`
	Share    int64 `json:"share"`
	Like     int64 `json:"like"`
}

// Fetch retrieves and normalizes the video identified by id.
func (c *Client) Fetch(ctx context.Context, id ID) (Summary, error) {
	if !id.Valid() {
		return Summary{}, fmt.Errorf("%w: %q", ErrNoIdentifier, string(id))
	}

	endpoint := c.BaseURL + viewPath + "?" + url.Values{"bvid": {string(id)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("build view request: %w", err)
	}
	c.Headers.apply(req)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Summary{}, &TransportError{Op: "fetch video", URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxViewBodyBytes))
	if err != nil {
		return Summary{}, &TransportError{Op: "read video response", URL: endpoint, Err: err}
	}

	var payload viewResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Summary{}, fmt.Errorf("decode view response (http %d): %w", resp.StatusCode, err)
	}

	if payload.Code == nil || *payload.Code != 0 {
		code := -1
		if payload.Code != nil {
			code = *payload.Code
		}
		return Summary{}, &UpstreamError{Code: code, Message: stringOr(payload.Message, defaultAPIMessage)}
	}

	return c.summarize(id, payload.Data), nil
}

func (c *Client) summarize(id ID, data *viewData) Summary {
	if data == nil {
		data = &viewData{}
	}
	owner := data.Owner
	if owner == nil {
		owner = &viewOwner{}
	}
	stat := data.Stat
	if stat == nil {
		stat = &viewStat{}
	}

	return Summary{
		BVID:         id,
		Title:        stringOr(data.Title, defaultTitle),
		Author:       stringOr(owner.Name, defaultAuthor),
		AuthorFace:   stringOr(owner.Face, ""),
		Cover:        stringOr(data.Pic, ""),
		Description:  stringOr(data.Desc, defaultDescription),
		Views:        NewCounter(stat.View),
		Danmaku:      NewCounter(stat.Danmaku),
		Likes:        NewCounter(stat.Like),
		Coins:        NewCounter(stat.Coin),
		Favorites:    NewCounter(stat.Favorite),
		Shares:       NewCounter(stat.Share),
		Replies:      NewCounter(stat.Reply),
		Duration:     data.Duration,
		DurationText: FormatDuration(data.Duration),
		PublishedAt:  FormatPubdate(data.Pubdate, c.Location),
	}
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
