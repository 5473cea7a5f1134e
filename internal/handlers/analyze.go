package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bililens/backend/internal/logging"
	"github.com/bililens/backend/internal/videos"
)

const (
	maxAnalyzeBodyBytes = 64 << 10
	successMessage      = "✅ 成功访问B站视频！"
	noIdentifierDetail  = "无法从链接中提取BV号，请检查链接格式"
)

// AnalyzeHandler serves video analysis requests.
type AnalyzeHandler struct {
	Analyzer VideoAnalyzer
}

type analyzeRequest struct {
	URL string `json:"url"`
}

type analyzeResponse struct {
	Status     string `json:"status"`
	BVID       string `json:"bvid"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	AuthorFace string `json:"author_face"`
	Cover      string `json:"cover"`
	Desc       string `json:"desc"`

	View              int64  `json:"view"`
	ViewFormatted     string `json:"view_formatted"`
	Danmaku           int64  `json:"danmaku"`
	DanmakuFormatted  string `json:"danmaku_formatted"`
	Like              int64  `json:"like"`
	LikeFormatted     string `json:"like_formatted"`
	Coin              int64  `json:"coin"`
	CoinFormatted     string `json:"coin_formatted"`
	Favorite          int64  `json:"favorite"`
	FavoriteFormatted string `json:"favorite_formatted"`
	Share             int64  `json:"share"`
	ShareFormatted    string `json:"share_formatted"`
	Reply             int64  `json:"reply"`
	ReplyFormatted    string `json:"reply_formatted"`

	Duration          int64  `json:"duration"`
	DurationFormatted string `json:"duration_formatted"`
	Pubdate           string `json:"pubdate"`
	Msg               string `json:"msg"`
}

func newAnalyzeResponse(s videos.Summary) analyzeResponse {
	return analyzeResponse{
		Status:            "success",
		BVID:              string(s.BVID),
		Title:             s.Title,
		Author:            s.Author,
		AuthorFace:        s.AuthorFace,
		Cover:             s.Cover,
		Desc:              s.Description,
		View:              s.Views.Value,
		ViewFormatted:     s.Views.Display,
		Danmaku:           s.Danmaku.Value,
		DanmakuFormatted:  s.Danmaku.Display,
		Like:              s.Likes.Value,
		LikeFormatted:     s.Likes.Display,
		Coin:              s.Coins.Value,
		CoinFormatted:     s.Coins.Display,
		Favorite:          s.Favorites.Value,
		FavoriteFormatted: s.Favorites.Display,
		Share:             s.Shares.Value,
		ShareFormatted:    s.Shares.Display,
		Reply:             s.Replies.Value,
		ReplyFormatted:    s.Replies.Display,
		Duration:          s.Duration,
		DurationFormatted: s.DurationText,
		Pubdate:           s.PublishedAt,
		Msg:               successMessage,
	}
}

// Analyze handles POST /api/analyze.
func (h AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Analyzer == nil {
		logger.Error("video analyzer unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "服务器内部错误：video analyzer unavailable")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)).Decode(&req); err != nil {
		logger.Warn("invalid analyze payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		respondError(ctx, w, http.StatusBadRequest, noIdentifierDetail)
		return
	}

	logger.Info("analyzing video", "url", req.URL)

	summary, err := h.Analyzer.Analyze(ctx, req.URL)
	if err != nil {
		status, detail := classifyError(err)
		respondError(ctx, w, status, detail)
		return
	}

	logger.Info("video analyzed", "bvid", string(summary.BVID))
	respondJSON(ctx, w, http.StatusOK, newAnalyzeResponse(summary))
}

// classifyError maps analysis failures to a status and client-facing text.
// Bad input, upstream rejections and network failures are the caller's
// problem to fix or retry; anything else is ours.
func classifyError(err error) (int, string) {
	var upstream *videos.UpstreamError
	var transport *videos.TransportError

	switch {
	case errors.Is(err, videos.ErrNoIdentifier):
		return http.StatusBadRequest, noIdentifierDetail
	case errors.As(err, &upstream):
		return http.StatusBadRequest, "B站API返回错误：" + upstream.Message
	case errors.As(err, &transport):
		cause := transport.Error()
		if transport.Err != nil {
			cause = transport.Err.Error()
		}
		return http.StatusBadRequest, "网络请求错误：" + cause
	default:
		return http.StatusInternalServerError, "服务器内部错误：" + err.Error()
	}
}
