package ports

import "github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/domain"

// OrderSource defines the interface for fetching candidate orders from the
// commerce platform's Admin API. Calls are bounded by the HTTP client's
// timeout; the lookup flow is one-shot with no cancellation.
type OrderSource interface {
	// FetchOrders returns the candidate orders for a customer-facing order
	// code, most relevant first, already enriched with product data where the
	// protocol provides it. Transport and API failures come back as
	// *UpstreamError.
	FetchOrders(code string) ([]domain.Order, error)
}

// HealthChecker is implemented by sources that can verify upstream
// connectivity, typically probed once at startup.
type HealthChecker interface {
	HealthCheck() error
}

// UpstreamError is the single error shape sources normalize transport and
// API failures into. Message is safe to surface to a client: status numbers
// and API error text only, never URLs, hosts or credentials. Err carries the
// underlying cause for the logs.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
