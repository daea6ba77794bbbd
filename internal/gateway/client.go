// Package gateway issues the core's outbound HTTP calls. Every request carries
// a fresh correlation identifier; transport failures and structured error
// payloads are normalized into the canonical AppError shape. This is the only
// place a transport-level failure may cross into cross-cutting notification:
// an authorization-expiry error publishes a SessionExpired event while the
// error is still returned in-band.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"wildhaven/internal/events"
	"wildhaven/internal/pkg/result"

	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-Id"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

type Client struct {
	http   *http.Client
	bus    *events.Bus
	logger *slog.Logger
}

func NewClient(httpClient *http.Client, bus *events.Bus, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, bus: bus, logger: logger}
}

// RequestOption adjusts a single outbound request.
type RequestOption func(*http.Request)

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Do performs one call and returns the raw success payload. A nil body sends
// no request body and no Content-Type header.
func (c *Client) Do(ctx context.Context, method, url string, body any, opts ...RequestOption) result.Result[[]byte] {
	var reader io.Reader
	hasBody := body != nil
	if hasBody {
		encoded, err := json.Marshal(body)
		if err != nil {
			return result.Err[[]byte](result.FromException(err, result.CodeUnexpectedError, "errors.unexpected", 0))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return result.Err[[]byte](result.FromException(err, result.CodeUnexpectedError, "errors.unexpected", 0))
	}

	for _, opt := range opts {
		opt(req)
	}
	if hasBody && req.Header.Get(headerContentType) == "" {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	correlationID := uuid.NewString()
	req.Header.Set(HeaderCorrelationID, correlationID)

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: the failure is a transport classification,
		// never a session-expiry signal.
		c.logger.Warn("outbound call failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.String("correlation_id", correlationID),
			slog.Any("error", err),
		)
		return result.Err[[]byte](result.NewAppError(result.CodeNetworkError, "errors.network"))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return result.Err[[]byte](result.NewAppError(result.CodeNetworkError, "errors.network"))
	}

	if payload, ok := decodeJSONPayload(resp, raw); ok && isProblemDetails(payload) {
		appErr := toAppError(payload, resp.StatusCode)
		c.notifySessionExpiry(appErr)
		return result.Err[[]byte](appErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result.Err[[]byte](result.NewAppError(
			result.CodeUnexpectedError,
			"errors.unexpected",
			result.WithStatus(resp.StatusCode),
			result.WithDetails(string(raw)),
		))
	}

	return result.Ok(raw)
}

func (c *Client) notifySessionExpiry(appErr *result.AppError) {
	if appErr.Code != result.CodeAuthRefreshExpired || c.bus == nil {
		return
	}
	c.bus.Publish(events.Event{Type: events.SessionExpired})
}

func decodeJSONPayload(resp *http.Response, raw []byte) (any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	if !strings.Contains(resp.Header.Get(headerContentType), contentTypeJSON) {
		return nil, false
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		// A successful but unparseable body degrades to raw text downstream.
		return nil, false
	}
	return payload, true
}

// Get issues a GET and decodes the JSON success payload into T. An empty body
// yields the zero value of T.
func Get[T any](ctx context.Context, c *Client, url string, opts ...RequestOption) result.Result[T] {
	return decode[T](c.Do(ctx, http.MethodGet, url, nil, opts...))
}

func Post[T any](ctx context.Context, c *Client, url string, body any, opts ...RequestOption) result.Result[T] {
	return decode[T](c.Do(ctx, http.MethodPost, url, body, opts...))
}

func Put[T any](ctx context.Context, c *Client, url string, body any, opts ...RequestOption) result.Result[T] {
	return decode[T](c.Do(ctx, http.MethodPut, url, body, opts...))
}

func Delete[T any](ctx context.Context, c *Client, url string, opts ...RequestOption) result.Result[T] {
	return decode[T](c.Do(ctx, http.MethodDelete, url, nil, opts...))
}

func decode[T any](res result.Result[[]byte]) result.Result[T] {
	if !res.OK() {
		return result.MapErr[[]byte, T](res)
	}
	var value T
	raw := res.Value()
	if len(raw) == 0 {
		return result.Ok(value)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return result.Err[T](result.FromException(err, result.CodeUnexpectedError, "errors.unexpected", 0))
	}
	return result.Ok(value)
}
