package push

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
)

func TestMain(m *testing.M) {
	logging.Discard()
	m.Run()
}

type captured struct {
	method  string
	path    string
	headers http.Header
	body    string
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.headers = r.Header.Clone()
		got.body = string(b)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(baseURL, "")
	require.NoError(t, err)
	return c
}

var oneCommit = []model.Commit{{Date: "2024-01-01T00:00:00Z", Count: 24}}

// =============================================================================
// Client Construction Tests
// =============================================================================

func TestNewClient(t *testing.T) {
	t.Run("default_path", func(t *testing.T) {
		c := newClient(t, "http://localhost:5000")
		assert.Equal(t, "http://localhost:5000/post-commits-to-github", c.URL())
	})

	t.Run("trailing_slash_and_prefix", func(t *testing.T) {
		c, err := NewClient("https://example.com/api/", "/custom")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api/custom", c.URL())
	})

	t.Run("invalid_url", func(t *testing.T) {
		_, err := NewClient("localhost:5000", "")
		assert.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}

// =============================================================================
// Request Tests
// =============================================================================

func TestSubmitRequest(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"message":"ok"}`)
	c := newClient(t, srv.URL)

	result := c.Submit(context.Background(), oneCommit)
	require.NoError(t, result.Err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, DefaultPath, got.path)
	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.Equal(t, DefaultUserAgent, got.headers.Get("User-Agent"))
	assert.JSONEq(t, `{"commits":[{"date":"2024-01-01T00:00:00Z","count":24}]}`, got.body)

	id := got.headers.Get(HeaderRequestID)
	assert.Equal(t, result.RequestID, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSubmitKeepsCommitOrder(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"message":"ok"}`)
	c := newClient(t, srv.URL)

	commits := []model.Commit{
		{Date: "2024-01-01T00:00:00Z", Count: 24},
		{Date: "2024-01-02T00:00:00Z", Count: 14},
		{Date: "2024-01-03T00:00:00Z", Count: 3},
	}
	c.Submit(context.Background(), commits)
	assert.JSONEq(t, `{"commits":[
		{"date":"2024-01-01T00:00:00Z","count":24},
		{"date":"2024-01-02T00:00:00Z","count":14},
		{"date":"2024-01-03T00:00:00Z","count":3}]}`, got.body)
}

func TestSubmitUsesContextRequestID(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv.URL)

	ctx := logging.WithRequestID(context.Background(), "fixed-id")
	result := c.Submit(ctx, oneCommit)
	assert.Equal(t, "fixed-id", result.RequestID)
	assert.Equal(t, "fixed-id", got.headers.Get(HeaderRequestID))
}

func TestSubmitNilCommits(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv.URL)

	c.Submit(context.Background(), nil)
	assert.JSONEq(t, `{"commits":[]}`, got.body)
}

func TestWithUserAgent(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c, err := NewClient(srv.URL, "", WithUserAgent("painter-test"))
	require.NoError(t, err)

	c.Submit(context.Background(), oneCommit)
	assert.Equal(t, "painter-test", got.headers.Get("User-Agent"))
}

// =============================================================================
// Response Tests
// =============================================================================

func TestSubmitResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		ok      bool
	}{
		{"ok_with_message", http.StatusOK, `{"message":"ok"}`, "ok", true},
		{"ok_without_message", http.StatusOK, `{}`, SuccessMessage, true},
		{"ok_empty_body", http.StatusOK, ``, SuccessMessage, true},
		{"ok_not_json", http.StatusOK, `<html>`, SuccessMessage, true},
		{"error_with_message", http.StatusBadRequest, `{"message":"Not logged in."}`, "Not logged in.", false},
		{"error_empty_body", http.StatusInternalServerError, ``, FallbackMessage, false},
		{"error_not_json", http.StatusBadGateway, `Bad Gateway`, FallbackMessage, false},
		{"error_empty_message", http.StatusInternalServerError, `{"message":""}`, FallbackMessage, false},
		{"created_is_not_ok", http.StatusCreated, `{"message":"made"}`, "made", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			result := newClient(t, srv.URL).Submit(context.Background(), oneCommit)

			assert.Equal(t, tt.status, result.StatusCode)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, tt.ok, result.OK())
			if !tt.ok {
				assert.True(t, errors.Is(result.Err, errors.ErrPushFailed))
			}
		})
	}
}

func TestSubmitSanitizesMessage(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"message":"done\n\u001b[31m now"}`)
	result := newClient(t, srv.URL).Submit(context.Background(), oneCommit)
	assert.Equal(t, "done [31m now", result.Message)
}

func TestSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	result := newClient(t, url).Submit(context.Background(), oneCommit)
	assert.Equal(t, FallbackMessage, result.Message)
	assert.Equal(t, 0, result.StatusCode)
	assert.False(t, result.OK())
	assert.True(t, errors.IsRecoverableError(result.Err))
	assert.True(t, errors.Is(result.Err, errors.ErrNetworkUnavailable))
}

func TestSubmitCanceledContext(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newClient(t, srv.URL).Submit(ctx, oneCommit)
	assert.Equal(t, FallbackMessage, result.Message)
	assert.True(t, errors.IsSystemError(result.Err))
}

func TestSubmitDeadline(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := newClient(t, srv.URL).Submit(ctx, oneCommit)
	assert.Equal(t, FallbackMessage, result.Message)
	assert.True(t, errors.Is(result.Err, errors.ErrTimeout))
}
