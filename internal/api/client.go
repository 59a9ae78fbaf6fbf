package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	DefaultUserAgent = "oracle-cli/1.0"
	maxErrorBody     = 512
)

type Client interface {
	Health(ctx context.Context) (*HealthResponse, error)
	Chat(ctx context.Context, message string) (string, error)
}

type Option func(*httpClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *httpClient) { c.client = client }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *httpClient) { c.logger = logger }
}

func WithUserAgent(userAgent string) Option {
	return func(c *httpClient) { c.userAgent = userAgent }
}

type httpClient struct {
	baseURL   string
	client    *http.Client
	logger    *slog.Logger
	userAgent string
}

// NewClient returns a Client sending every request to baseURL. It performs
// no retries: each call maps to exactly one HTTP request.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    http.DefaultClient,
		logger:    slog.Default(),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *httpClient) Chat(ctx context.Context, message string) (string, error) {
	req := ChatRequest{
		Messages: []ChatMessage{{Role: User, Content: message}},
	}

	var res chatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", req, &res); err != nil {
		return "", err
	}
	if res.Message == nil {
		return "", nil
	}
	return res.Message.Content, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, in any, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending api request", "method", method, "url", url)

	res, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "url", url, "error", err)
		return &NetworkError{Op: method, URL: url, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.Error("failed to read api response", "method", method, "url", url, "error", err)
		return &NetworkError{Op: method, URL: url, Err: err}
	}

	c.logger.Debug("received api response", "method", method, "url", url, "status_code", res.StatusCode, "size", len(data))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &ProtocolError{Op: method, URL: url, StatusCode: res.StatusCode, Body: truncate(data, maxErrorBody)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Error("failed to decode api response", "method", method, "url", url, "error", err)
		return &ProtocolError{Op: method, URL: url, StatusCode: res.StatusCode, Body: truncate(data, maxErrorBody), Err: err}
	}
	return nil
}

func truncate(data []byte, n int) string {
	s := strings.TrimSpace(string(data))
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
