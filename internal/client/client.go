// the client package is used by the ui-api handlers and the cli to call the backend API.
// Each method maps to exactly one backend endpoint and returns the decoded response body.
// Failures are returned as a *ClientError that separates the user-facing message from the technical detail used for logging (see client/errors.go).
// Callers that prefer log-and-return-nil over error values can wrap the client with NewLenient.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	teamsd "github.com/information-sharing-networks/teamsd"
)

// Client handles communication with the backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http client (e.g to add a custom transport)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets an overall timeout on each backend call. 0 means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend location without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request to the backend and decodes a 2xx response body into out (when out is not nil).
//
// body is marshaled as-is. while describes the operation and is used in error log messages.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, while string) (err error) {
	start := time.Now()
	defer func() { observeBackendCall(while, start, err) }()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return NewClientInternalError(err, "marshaling "+while+" request")
		}
		reqBody = bytes.NewReader(jsonData)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return NewClientInternalError(err, "creating "+while+" request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(teamsd.RequestIDHeader, requestID(ctx))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return NewClientConnectionError(err)
	}
	defer res.Body.Close()

	c.logger.LogAttrs(ctx, slog.LevelDebug, "backend request",
		slog.String("method", method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.StatusCode),
		slog.String("request_id", req.Header.Get(teamsd.RequestIDHeader)),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return NewClientApiError(res)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return NewClientDecodeError(err, "decoding "+while+" response")
	}

	return nil
}

// requestID reuses the id of the incoming gateway request when there is one so the backend logs can be correlated
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
