package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/media-browser/internal/model"
)

// Endpoint defaults
const (
	DefaultCategoriesURL = "https://openapi.programming-hero.com/api/videos/categories"
	DefaultMediaURL      = "https://openapi.programming-hero.com/api/videos/category"
)

// Request defaults
const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "media-browser"

	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 16 << 20
)

// Options configures a Client
type Options struct {
	CategoriesURL string
	MediaURL      string
	Timeout       time.Duration
	UserAgent     string

	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client fetches categories, media lists and images
type Client struct {
	httpClient    *http.Client
	categoriesURL string
	mediaURL      string
	userAgent     string
	logger        *zap.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client after validating both endpoint URLs
func NewClient(opts Options) (*Client, error) {
	if opts.CategoriesURL == "" {
		opts.CategoriesURL = DefaultCategoriesURL
	}
	if opts.MediaURL == "" {
		opts.MediaURL = DefaultMediaURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	for _, raw := range []string{opts.CategoriesURL, opts.MediaURL} {
		if err := ValidateURL(raw); err != nil {
			return nil, err
		}
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient:    hc,
		categoriesURL: opts.CategoriesURL,
		mediaURL:      strings.TrimRight(opts.MediaURL, "/"),
		userAgent:     opts.UserAgent,
		logger:        opts.Logger,
	}, nil
}

// ValidateURL checks that raw is an absolute http(s) URL
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: URL must start with http:// or https://", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", raw)
	}
	return nil
}

// envelope is the response shape shared by both endpoints
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
}

// Categories fetches the category list
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	return fetchList[model.Category](ctx, c, c.categoriesURL)
}

// Media fetches the items of one category
func (c *Client) Media(ctx context.Context, categoryID string) ([]model.MediaItem, error) {
	return fetchList[model.MediaItem](ctx, c, c.MediaURL(categoryID))
}

// MediaURL returns the media endpoint for a category
func (c *Client) MediaURL(categoryID string) string {
	return c.mediaURL + "/" + url.PathEscape(categoryID)
}

// validate requires the data member. A missing or null data member counts as
// an absent body; an empty array is a valid list.
func (e *envelope[T]) validate() error {
	if e.Data == nil {
		return fmt.Errorf("%w: no data member", ErrDecode)
	}
	return nil
}

func fetchList[T any](ctx context.Context, c *Client, rawURL string) ([]T, error) {
	var env envelope[T]
	if err := c.FetchJSON(ctx, rawURL, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchJSON issues a GET and decodes the body into out. When out has a
// validate method it must accept the decoded value too.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, out any) error {
	body, reqID, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	err = decode(body, out)
	if v, ok := out.(interface{ validate() error }); ok && err == nil {
		err = v.validate()
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", rawURL, err)
		c.logFailure(ctx, rawURL, reqID, err)
		return err
	}
	return nil
}

// Image fetches raw image bytes
func (c *Client) Image(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	body, _, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty image body from %s", ErrDecode, rawURL)
	}
	return body, nil
}

func decode(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrDecode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// get performs the request and returns the body of a 2xx response.
// Every failure is logged before it is returned.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		err = fmt.Errorf("%w: build request: %v", ErrTransport, err)
		c.logFailure(ctx, rawURL, reqID, err)
		return nil, reqID, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, image/*;q=0.9, */*;q=0.8")
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransport, err)
		c.logFailure(ctx, rawURL, reqID, err)
		return nil, reqID, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		err := &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
		c.logFailure(ctx, rawURL, reqID, err)
		return nil, reqID, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		err = fmt.Errorf("%w: read body: %w", ErrTransport, err)
		c.logFailure(ctx, rawURL, reqID, err)
		return nil, reqID, err
	}

	c.logger.Debug("fetched",
		zap.String("url", rawURL),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))
	return body, reqID, nil
}

// logFailure logs at warn level unless the caller gave up on the request.
func (c *Client) logFailure(ctx context.Context, rawURL, reqID string, err error) {
	fields := []zap.Field{
		zap.String("url", rawURL),
		zap.String("request_id", reqID),
		zap.String("class", Class(err)),
		zap.Error(err),
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		c.logger.Debug("fetch abandoned", fields...)
		return
	}
	c.logger.Warn("fetch failed", fields...)
}
