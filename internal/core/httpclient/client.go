package httpclient

import (
	"net/http"
	"time"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/logger"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every Admin API call. The client timeout is the only
// deadline in the request path, so a hung upstream fails the lookup instead
// of hanging the widget.
const DefaultTimeout = 10 * time.Second

// loggingTransport captures request details for debugging.
type loggingTransport struct {
	next http.RoundTripper
}

// RoundTrip executes the request and logs method, URL, status and duration.
// Credentials travel in headers and never appear in the logged URL.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("upstream request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("upstream request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("upstream request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// New returns an http.Client with debug logging and a hard timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &loggingTransport{
			next: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
