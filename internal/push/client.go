// Package push submits a verified canvas to the commit server.
package push

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/validate"
)

const (
	// DefaultPath is the endpoint that fabricates commits.
	DefaultPath = "/post-commits-to-github"
	// DefaultUserAgent identifies the painter to the server.
	DefaultUserAgent = "gitfiti/1.0"
	// HeaderRequestID carries the per-push request id.
	HeaderRequestID = "X-Request-ID"

	// FallbackMessage is shown when the server gives no usable message.
	FallbackMessage = "Server error."
	// SuccessMessage is shown for a 200 response without a message.
	SuccessMessage = "Commits pushed."
)

// Request is the wire payload.
type Request struct {
	Commits []model.Commit `json:"commits"`
}

type response struct {
	Message string `json:"message"`
}

// Result contains the outcome of a push.
type Result struct {
	StatusCode int
	Message    string
	RequestID  string
	Duration   time.Duration
	Err        error
}

// OK reports whether the server accepted the commits.
func (r *Result) OK() bool {
	return r.Err == nil && r.StatusCode == http.StatusOK
}

// Client posts submissions to the commit server. It makes exactly one
// attempt per Submit and sets no timeout of its own.
type Client struct {
	client    *http.Client
	url       string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client posting to baseURL+path. An empty path uses
// DefaultPath.
func NewClient(baseURL, path string, opts ...Option) (*Client, error) {
	if err := validate.ServerURL(baseURL); err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultPath
	}
	c := &Client{
		client:    &http.Client{},
		url:       strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the full endpoint URL.
func (c *Client) URL() string {
	return c.url
}

// Submit sends commits in a single POST. The result always carries a
// displayable Message; Err is set for transport failures and non-200 replies.
func (c *Client) Submit(ctx context.Context, commits []model.Commit) *Result {
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.NewRequestContext(ctx)
	}
	log := logging.FromContext(ctx).With(logging.KeyURL, logging.RedactURL(c.url))
	result := &Result{RequestID: logging.RequestIDFromContext(ctx)}
	start := time.Now()

	if commits == nil {
		commits = []model.Commit{}
	}
	body, err := sonic.Marshal(Request{Commits: commits})
	if err != nil {
		return c.fail(log, result, start, errors.NewSystemErrorWithOp("push", "cannot encode commits", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return c.fail(log, result, start, errors.NewSystemErrorWithOp("push", "cannot create request", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, result.RequestID)

	log.Debug("push started", logging.KeyCount, len(commits))

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(log, result, start, classifyTransport(err))
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	result.StatusCode = resp.StatusCode
	result.Duration = time.Since(start)
	msg := decodeMessage(bodyBytes)

	if resp.StatusCode == http.StatusOK {
		if msg == "" {
			msg = SuccessMessage
		}
		result.Message = msg
		log.Info("push finished",
			logging.KeyStatus, resp.StatusCode,
			logging.KeyDuration, result.Duration.Milliseconds())
		return result
	}

	if msg == "" {
		msg = FallbackMessage
	}
	result.Message = msg
	result.Err = errors.Wrapf(errors.ErrPushFailed, "HTTP %d", resp.StatusCode)
	log.Warn("push rejected",
		logging.KeyStatus, resp.StatusCode,
		logging.KeyDuration, result.Duration.Milliseconds(),
		logging.KeyError, logging.SanitizeLogMessage(msg))
	return result
}

func (c *Client) fail(log *logging.ContextLogger, result *Result, start time.Time, err error) *Result {
	result.Duration = time.Since(start)
	result.Message = FallbackMessage
	result.Err = err
	log.Error("push failed",
		logging.KeyCategory, errors.GetCategory(err).String(),
		logging.KeyDuration, result.Duration.Milliseconds(),
		logging.KeyError, logging.SanitizeLogMessage(err.Error()))
	return result
}

// decodeMessage extracts the "message" field. Missing, empty or non-JSON
// bodies yield "".
func decodeMessage(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var r response
	if err := sonic.Unmarshal(body, &r); err != nil {
		return ""
	}
	return validate.ServerMessage(r.Message)
}

func classifyTransport(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errors.NewRecoverableError("push timed out", fmt.Errorf("%w: %w", errors.ErrTimeout, err))
	case errors.Is(err, context.Canceled):
		return errors.NewSystemErrorWithOp("push", "request canceled", err)
	default:
		return errors.NewRecoverableError("commit server unreachable", fmt.Errorf("%w: %w", errors.ErrNetworkUnavailable, err))
	}
}
