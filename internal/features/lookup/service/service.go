package service

import (
	"errors"
	"fmt"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/domain"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/ports"
)

var (
	// ErrNotConfigured means the Admin API credentials are absent. The server
	// boots without them and reports the problem per lookup.
	ErrNotConfigured = errors.New("admin API credentials are not configured")
	// ErrOrderNotFound means no candidate passed the postcode check. It covers
	// unknown codes and postcode mismatches alike, so a caller cannot probe
	// which order codes exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNoItems means the matched order composed zero item views.
	ErrNoItems = errors.New("no products found on order")
)

// Result is the composed outcome of one successful lookup.
type Result struct {
	// Order is the resolved platform order.
	Order domain.Order
	// Tracking holds the composed shipment entries, always non-nil.
	Tracking []domain.TrackingEntry
	// Items holds the composed item views, never empty.
	Items []domain.ItemView
}

// LookupService ties the order source to postcode resolution and response
// composition.
type LookupService struct {
	source  ports.OrderSource
	shopify config.ShopifyConfig
	mode    domain.MatchMode
}

// NewLookupService creates a new LookupService.
func NewLookupService(source ports.OrderSource, cfg *config.AppConfig) *LookupService {
	return &LookupService{
		source:  source,
		shopify: cfg.Shopify,
		mode:    domain.MatchMode(cfg.Lookup.MatchMode),
	}
}

// Lookup finds the order for an order code and postcode pair and composes its
// public view. Both inputs arrive trimmed and non-empty; the handler owns
// request validation.
func (s *LookupService) Lookup(orderCode, postcode string) (*Result, error) {
	if !s.shopify.Configured() {
		return nil, ErrNotConfigured
	}

	orders, err := s.source.FetchOrders(orderCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	order, ok := domain.Resolve(orders, postcode, s.mode)
	if !ok {
		return nil, ErrOrderNotFound
	}

	items := s.composeItems(order)
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return &Result{
		Order:    order,
		Tracking: domain.ComposeTracking(order),
		Items:    items,
	}, nil
}

// composeItems picks the item shape matching the upstream protocol: per-line
// views for REST, handle-grouped views for GraphQL.
func (s *LookupService) composeItems(order domain.Order) []domain.ItemView {
	if s.shopify.Protocol == config.ProtocolGraphQL {
		return domain.ComposeItemsByHandle(order)
	}
	return domain.ComposeLineItems(order)
}
