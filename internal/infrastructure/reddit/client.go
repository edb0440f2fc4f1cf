// Package reddit reads public Reddit search results.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pulseboard/internal/application/triage"
	sharedConfig "pulseboard/internal/shared/config"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

const maxBodyExcerpt = 1000

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.RedditConfig, log logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		logger:     log,
	}
}

// Search returns the newest posts matching query. Any failure is an UpstreamError.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]triage.Post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "new")
	params.Set("type", "link")
	params.Set("raw_json", "1")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reddit: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("reddit search failed", "query", query, "error", err)
		return nil, errors.NewUpstreamError(constants.ErrMsgAIUnavailable).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warnw("reddit search returned error status", "query", query, "status", resp.StatusCode)
		return nil, errors.NewUpstreamError(constants.ErrMsgAIUnavailable).
			WithCause(fmt.Errorf("reddit: HTTP %d: %s", resp.StatusCode, body))
	}

	var listing searchListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.NewUpstreamError(constants.ErrMsgAIUnavailable).
			WithCause(fmt.Errorf("reddit: decoding listing: %w", err))
	}

	posts := make([]triage.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		p := child.Data
		posts = append(posts, triage.Post{
			ID:        p.ID,
			Title:     p.Title,
			Body:      excerpt(p.Selftext, maxBodyExcerpt),
			Subreddit: p.Subreddit,
			Author:    p.Author,
			Score:     p.Score,
			Comments:  p.NumComments,
			URL:       c.permalink(p.Permalink),
			CreatedAt: int64(p.CreatedUTC),
		})
	}
	return posts, nil
}

func (c *Client) permalink(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return c.baseURL + path
}

func excerpt(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "…"
}

type searchListing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Subreddit   string  `json:"subreddit"`
				Author      string  `json:"author"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				Permalink   string  `json:"permalink"`
				CreatedUTC  float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}
