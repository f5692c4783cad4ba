package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/corerestore/internal/platform/logging"
)

const (
	chatPath  = "/chat"
	userAgent = "corerestore"
)

// Client implements Service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the coach endpoint base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithAPIKey sets the Bearer key for the coach endpoint.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a new coach client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{httpClient: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Reply(ctx context.Context, in Request) (*Reply, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding coach request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		applog.LogWarn(ctx, "coach request failed", zap.Error(err))
		return nil, &UpstreamError{Kind: UpstreamErrorKindUnavailable, cause: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	var out Reply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding coach response: %w", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return nil, upstreamErrorFromResponse(resp, UpstreamErrorKindUpstream, ErrUpstream)
	}
	return &out, nil
}

func checkResponse(ctx context.Context, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		applog.LogWarn(ctx, "coach rate limit exceeded",
			zap.Int("status", resp.StatusCode),
			zap.String("Retry-After", resp.Header.Get("Retry-After")),
		)
		return upstreamErrorFromResponse(resp, UpstreamErrorKindRateLimited, ErrRateLimited)
	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return upstreamErrorFromResponse(resp, UpstreamErrorKindUnavailable, ErrUnavailable)
	default:
		applog.LogWarn(ctx, "coach upstream error", zap.Int("status", resp.StatusCode))
		return upstreamErrorFromResponse(resp, UpstreamErrorKindUpstream, ErrUpstream)
	}
}

func upstreamErrorFromResponse(resp *http.Response, kind UpstreamErrorKind, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		Status:     resp.StatusCode,
		RetryAfter: strings.TrimSpace(resp.Header.Get("Retry-After")),
		cause:      cause,
	}
}

// Compile-time interface check
var _ Service = (*Client)(nil)
