// Package client provides an HTTP client for the FinanceBook REST API.
//
// The bearer token is read from a TokenSource on every request, never
// cached between requests. Any 401 clears the token source and fires the
// unauthorized hook so the caller can send the user back to login.
// Idempotent reads are retried a bounded number of times on network and
// 5xx failures; writes are never retried.
package client

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

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	apperrors "financebook/internal/errors"
	"financebook/internal/logger"
)

const (
	// DefaultTimeout is the ceiling applied to every request.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries bounds the retries of a failed read.
	DefaultMaxRetries = 3

	defaultRetryBase = 200 * time.Millisecond
)

// TokenSource supplies the bearer token at request time.
type TokenSource interface {
	Token() (string, bool)
	Clear() error
}

type noToken struct{}

func (noToken) Token() (string, bool) { return "", false }
func (noToken) Clear() error          { return nil }

// Client communicates with the FinanceBook API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	maxRetries     uint64
	retryBase      time.Duration
	onUnauthorized func()
	log            *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (and its timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request ceiling on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTokenSource sets where the bearer token comes from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithMaxRetries bounds retries of idempotent reads. Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.maxRetries = uint64(n)
	}
}

// WithRetryBase sets the first backoff interval.
func WithRetryBase(d time.Duration) Option {
	return func(c *Client) { c.retryBase = d }
}

// WithUnauthorizedHandler registers fn to run after a 401 purged the token.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger replaces the component logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the API rooted at baseURL (e.g. http://host:8000/api).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     noToken{},
		maxRetries: DefaultMaxRetries,
		retryBase:  defaultRetryBase,
		log:        logger.Named("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

// send performs r and returns a 2xx response whose body the caller must close.
func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	if r.method != http.MethodGet || c.maxRetries == 0 {
		return c.attempt(ctx, r)
	}

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	var resp *http.Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		resp, err = c.attempt(ctx, r)
		if err != nil && isRetryable(err) {
			c.log.Warnw("retrying request", "method", r.method, "path", r.path, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) attempt(ctx context.Context, r request) (*http.Response, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")

	token, authorized := c.tokens.Token()
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrNetwork, fmt.Errorf("%s %s: %w", r.method, r.path, err))
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		c.purge(authorized)
	}
	return nil, statusError(resp, r)
}

func (c *Client) purge(hadToken bool) {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warnw("clearing token after 401", "error", err)
	}
	if !hadToken {
		return
	}
	c.log.Infow("session rejected by server, token cleared")
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// statusError decodes the server's {"error":{code,message}} body when it
// has one, and falls back to a generic server error otherwise.
func statusError(resp *http.Response, r request) error {
	internal := fmt.Errorf("%s %s: unexpected status %d", r.method, r.path, resp.StatusCode)

	var body struct {
		Error apperrors.AppError `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Code != "" {
		return &apperrors.AppError{
			Code:       body.Error.Code,
			Message:    body.Error.Message,
			StatusCode: resp.StatusCode,
			Internal:   internal,
		}
	}

	sentinel := apperrors.ErrServer
	if resp.StatusCode == http.StatusUnauthorized {
		sentinel = apperrors.ErrUnauthorized
	}
	return &apperrors.AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: resp.StatusCode,
		Internal:   internal,
	}
}

func isRetryable(err error) bool {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == apperrors.ErrNetwork.Code || appErr.StatusCode >= http.StatusInternalServerError
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.send(ctx, request{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	r := request{method: method, path: path}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling %s body: %w", path, err)
		}
		r.body = body
		r.contentType = "application/json"
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrServer, fmt.Errorf("decoding %s response: %w", resp.Request.URL.Path, err))
	}
	return nil
}

func idPath(prefix string, id uint) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
