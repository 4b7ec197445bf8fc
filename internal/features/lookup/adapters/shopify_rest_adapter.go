package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/httpclient"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/logger"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/metrics"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/domain"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/ports"

	"go.uber.org/zap"
)

// tokenHeader authenticates every Admin API call. The token never travels in
// a URL, so logged URLs stay credential-free.
const tokenHeader = "X-Shopify-Access-Token"

// ShopifyRESTAdapter implements the OrderSource interface using the Shopify
// Admin REST API: one orders call filtered by name, then one batched products
// call to enrich the line items.
type ShopifyRESTAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Admin API connection details.
	config config.ShopifyConfig
	// baseURL is derived from the shop domain; tests point it at a stub
	// server.
	baseURL string
}

// NewShopifyRESTAdapter creates a new instance of ShopifyRESTAdapter.
func NewShopifyRESTAdapter(cfg config.ShopifyConfig) *ShopifyRESTAdapter {
	return &ShopifyRESTAdapter{
		client:  httpclient.New(httpclient.DefaultTimeout),
		config:  cfg,
		baseURL: "https://" + cfg.Shop,
	}
}

// FetchOrders lists the orders whose name matches the code. The status=any
// filter keeps fulfilled and archived orders visible, which is most of what
// people ask the help widget about. First page only.
func (a *ShopifyRESTAdapter) FetchOrders(code string) ([]domain.Order, error) {
	query := url.Values{}
	query.Set("status", "any")
	query.Set("name", code)

	var payload shopifyOrdersResponse
	if err := a.doGet("orders", "/orders.json?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(payload.Orders))
	for _, raw := range payload.Orders {
		orders = append(orders, mapShopifyOrder(raw))
	}

	a.enrichProducts(orders)
	return orders, nil
}

// HealthCheck verifies that the Admin API is reachable and the token works.
func (a *ShopifyRESTAdapter) HealthCheck() error {
	var payload struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	return a.doGet("health", "/shop.json", &payload)
}

// enrichProducts resolves every distinct product referenced by the orders'
// line items with a single batched products call and copies title, handle and
// image onto the lines. Failures degrade the affected items to their own
// line data; the lookup itself never fails here.
func (a *ShopifyRESTAdapter) enrichProducts(orders []domain.Order) {
	seen := make(map[int64]bool)
	ids := make([]string, 0)
	for _, order := range orders {
		for _, item := range order.LineItems {
			if item.ProductID != 0 && !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, strconv.FormatInt(item.ProductID, 10))
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	var payload shopifyProductsResponse
	if err := a.doGet("products", "/products.json?"+query.Encode(), &payload); err != nil {
		logger.Get().Warn("Product enrichment failed, serving line item data only",
			zap.Int("product_count", len(ids)),
			zap.Error(err),
		)
		return
	}

	products := make(map[int64]shopifyProduct, len(payload.Products))
	for _, product := range payload.Products {
		products[product.ID] = product
	}

	for oi := range orders {
		for li := range orders[oi].LineItems {
			item := &orders[oi].LineItems[li]
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}
			item.ProductTitle = product.Title
			item.Handle = product.Handle
			item.ImageURL = product.primaryImage()
		}
	}
}

// doGet performs one authenticated Admin API call and decodes the JSON body.
// Failures come back as *ports.UpstreamError whose message carries at most a
// status number, never the URL or token.
func (a *ShopifyRESTAdapter) doGet(operation, path string, out interface{}) error {
	req, err := http.NewRequest("GET", a.baseURL+"/admin/api/"+a.config.Version+path, nil)
	if err != nil {
		return &ports.UpstreamError{Message: "admin API request could not be built", Err: err}
	}
	req.Header.Set(tokenHeader, a.config.Token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(config.ProtocolREST, operation, metrics.OutcomeTransportError, time.Since(start))
		return &ports.UpstreamError{Message: "admin API request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(config.ProtocolREST, operation, metrics.OutcomeHTTPError, time.Since(start))
		return &ports.UpstreamError{Message: fmt.Sprintf("admin API returned status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ObserveUpstream(config.ProtocolREST, operation, metrics.OutcomeDecodeError, time.Since(start))
		return &ports.UpstreamError{Message: "admin API response could not be decoded", Err: err}
	}

	metrics.ObserveUpstream(config.ProtocolREST, operation, metrics.OutcomeOK, time.Since(start))
	return nil
}

// mapShopifyOrder converts a raw REST order into the domain entity.
func mapShopifyOrder(raw shopifyOrder) domain.Order {
	order := domain.Order{
		ID:               strconv.FormatInt(raw.ID, 10),
		Name:             raw.Name,
		OrderNumber:      raw.OrderNumber,
		ShippingPostcode: raw.ShippingAddress.Zip,
		BillingPostcode:  raw.BillingAddress.Zip,
	}

	for _, f := range raw.Fulfillments {
		order.Fulfillments = append(order.Fulfillments, domain.Fulfillment{
			TrackingNumbers: f.TrackingNumbers,
			TrackingURLs:    f.TrackingURLs,
			TrackingNumber:  f.TrackingNumber,
			TrackingURL:     f.TrackingURL,
			Company:         f.TrackingCompany,
			LegacyCompany:   f.Company,
		})
	}

	for _, item := range raw.LineItems {
		order.LineItems = append(order.LineItems, domain.LineItem{
			Title:     item.Title,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		})
	}

	return order
}

// internal structs for mapping

// shopifyOrdersResponse is the envelope of the orders listing endpoint.
type shopifyOrdersResponse struct {
	Orders []shopifyOrder `json:"orders"`
}

// shopifyOrder represents the JSON structure of an order from the Admin REST API.
type shopifyOrder struct {
	// ID is the unique numeric order ID.
	ID int64 `json:"id"`
	// Name is the customer-facing order code, usually "#"-prefixed.
	Name string `json:"name"`
	// OrderNumber is the plain numeric order number.
	OrderNumber int64 `json:"order_number"`
	// ShippingAddress holds the shipping address, of which only zip matters here.
	ShippingAddress shopifyAddress `json:"shipping_address"`
	// BillingAddress holds the billing address fallback.
	BillingAddress shopifyAddress `json:"billing_address"`
	// Fulfillments contains the shipment records with tracking data.
	Fulfillments []shopifyFulfillment `json:"fulfillments"`
	// LineItems contains the purchased products.
	LineItems []shopifyLineItem `json:"line_items"`
}

// shopifyAddress carries the postcode of an order address.
type shopifyAddress struct {
	// Zip is the raw postcode.
	Zip string `json:"zip"`
}

// shopifyFulfillment represents a shipment with current and legacy tracking fields.
type shopifyFulfillment struct {
	// TrackingNumbers is the list-shaped tracking number field.
	TrackingNumbers []string `json:"tracking_numbers"`
	// TrackingURLs is the list-shaped tracking URL field.
	TrackingURLs []string `json:"tracking_urls"`
	// TrackingNumber is the legacy single tracking number.
	TrackingNumber string `json:"tracking_number"`
	// TrackingURL is the legacy single tracking URL.
	TrackingURL string `json:"tracking_url"`
	// TrackingCompany is the carrier name.
	TrackingCompany string `json:"tracking_company"`
	// Company is the older carrier field.
	Company string `json:"company"`
}

// shopifyLineItem represents a purchased product line.
type shopifyLineItem struct {
	// ID is the line item ID.
	ID int64 `json:"id"`
	// Title is the product title snapshot at purchase time.
	Title string `json:"title"`
	// SKU is the purchased variant SKU.
	SKU string `json:"sku"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// ProductID links to the product for enrichment.
	ProductID int64 `json:"product_id"`
}

// shopifyProductsResponse is the envelope of the batched products endpoint.
type shopifyProductsResponse struct {
	Products []shopifyProduct `json:"products"`
}

// shopifyProduct represents a product from the Admin REST API.
type shopifyProduct struct {
	// ID is the unique numeric product ID.
	ID int64 `json:"id"`
	// Title is the live product title.
	Title string `json:"title"`
	// Handle is the storefront URL handle.
	Handle string `json:"handle"`
	// Image is the featured image.
	Image shopifyImage `json:"image"`
	// Images is the full image list, first entry preferred.
	Images []shopifyImage `json:"images"`
}

// primaryImage picks the first gallery image, falling back to the featured one.
func (p shopifyProduct) primaryImage() string {
	if len(p.Images) > 0 && p.Images[0].Src != "" {
		return p.Images[0].Src
	}
	return p.Image.Src
}

// shopifyImage holds a product image URL.
type shopifyImage struct {
	// Src is the source URL of the image.
	Src string `json:"src"`
}
