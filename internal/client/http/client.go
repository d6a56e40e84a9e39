package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cyphera/marketplace-api/internal/logger"

	"go.uber.org/zap"
)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPClient builds the *http.Client used for JSON-RPC traffic.
// It never retries; failures surface to the caller.
type HTTPClient struct {
	httpClient     *http.Client
	defaultHeaders map[string]string
	middlewares    []Middleware
	metrics        MetricsCollector
}

// MetricsCollector defines an interface for collecting metrics
type MetricsCollector interface {
	RecordRequestDuration(method, rpcMethod string, statusCode int, duration time.Duration)
	RecordRequestCount(method, rpcMethod string, statusCode int)
	RecordRequestError(method, rpcMethod string)
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{},
	}

	for _, option := range options {
		option(client)
	}

	transport := client.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if client.metrics != nil {
		transport = &metricsRoundTripper{next: transport, metrics: client.metrics}
	}
	if len(client.defaultHeaders) > 0 {
		transport = &headerRoundTripper{next: transport, headers: client.defaultHeaders}
	}

	// Apply middlewares in reverse order so the first one is outermost
	for i := len(client.middlewares) - 1; i >= 0; i-- {
		transport = client.middlewares[i](transport)
	}
	client.httpClient.Transport = transport

	return client
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// WithMetricsCollector sets the metrics collector
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		c.metrics = collector
	}
}

// Client returns the configured standard library client.
func (c *HTTPClient) Client() *http.Client {
	return c.httpClient
}

type headerRoundTripper struct {
	next    http.RoundTripper
	headers map[string]string
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key, value := range h.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	return h.next.RoundTrip(req)
}

type metricsRoundTripper struct {
	next    http.RoundTripper
	metrics MetricsCollector
}

func (m *metricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rpcMethod := peekRPCMethod(req)
	start := time.Now()

	resp, err := m.next.RoundTrip(req)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	m.metrics.RecordRequestDuration(req.Method, rpcMethod, statusCode, time.Since(start))
	m.metrics.RecordRequestCount(req.Method, rpcMethod, statusCode)
	if err != nil || statusCode >= 400 {
		m.metrics.RecordRequestError(req.Method, rpcMethod)
	}
	return resp, err
}

// LoggingMiddleware creates a middleware that logs JSON-RPC round trips.
// Only the host is logged since RPC URLs commonly embed API keys.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rpcMethod := peekRPCMethod(req)
	start := time.Now()

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Error("RPC request failed",
			zap.String("host", req.URL.Host),
			zap.String("rpc_method", rpcMethod),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	if resp.StatusCode >= 400 {
		logger.Warn("RPC error response",
			zap.String("host", req.URL.Host),
			zap.String("rpc_method", rpcMethod),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration))
		return resp, nil
	}

	logger.Debug("RPC response received",
		zap.String("host", req.URL.Host),
		zap.String("rpc_method", rpcMethod),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// peekRPCMethod reads the JSON-RPC method name and restores the body.
// Batches are reported as "batch".
func peekRPCMethod(req *http.Request) string {
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}
	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return "batch"
	}
	var msg struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(trimmed, &msg); err != nil {
		return ""
	}
	return msg.Method
}
