package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/httpclient"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/metrics"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/domain"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/ports"
)

// orderLookupQuery fetches candidate orders newest-first with line item
// product data embedded, so a lookup costs exactly one upstream call.
const orderLookupQuery = `query OrderLookup($q: String!) {
  orders(first: 5, query: $q, sortKey: CREATED_AT, reverse: true) {
    edges {
      node {
        id
        name
        shippingAddress { zip }
        billingAddress { zip }
        fulfillments {
          trackingInfo(first: 10) {
            number
            url
            company
          }
        }
        lineItems(first: 50) {
          edges {
            node {
              title
              quantity
              variant {
                sku
                product {
                  title
                  handle
                  featuredImage { url }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const shopNameQuery = `{ shop { name } }`

// ShopifyGraphQLAdapter implements the OrderSource interface using the
// Shopify Admin GraphQL API.
type ShopifyGraphQLAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Admin API connection details.
	config config.ShopifyConfig
	// baseURL is derived from the shop domain; tests point it at a stub
	// server.
	baseURL string
}

// NewShopifyGraphQLAdapter creates a new instance of ShopifyGraphQLAdapter.
func NewShopifyGraphQLAdapter(cfg config.ShopifyConfig) *ShopifyGraphQLAdapter {
	return &ShopifyGraphQLAdapter{
		client:  httpclient.New(httpclient.DefaultTimeout),
		config:  cfg,
		baseURL: "https://" + cfg.Shop,
	}
}

// FetchOrders searches orders with a widened query: the code as typed, the
// "#"-prefixed form the platform stores by default, and the numeric order
// number when the code carries digits.
func (a *ShopifyGraphQLAdapter) FetchOrders(code string) ([]domain.Order, error) {
	var data ordersQueryData
	err := a.postQuery("orders", orderLookupQuery, map[string]string{
		"q": buildSearchQuery(code),
	}, &data)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(data.Orders.Edges))
	for _, edge := range data.Orders.Edges {
		orders = append(orders, mapGraphQLOrder(edge.Node))
	}
	return orders, nil
}

// HealthCheck verifies that the Admin API is reachable and the token works.
func (a *ShopifyGraphQLAdapter) HealthCheck() error {
	var data struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	return a.postQuery("health", shopNameQuery, nil, &data)
}

// postQuery runs one GraphQL document against the Admin API. A top-level
// errors list counts as a failed call even under HTTP 200, which is how
// GraphQL reports most problems.
func (a *ShopifyGraphQLAdapter) postQuery(operation, query string, variables map[string]string, data interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return &ports.UpstreamError{Message: "admin API request could not be built", Err: err}
	}

	endpoint := a.baseURL + "/admin/api/" + a.config.Version + "/graphql.json"
	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return &ports.UpstreamError{Message: "admin API request could not be built", Err: err}
	}
	req.Header.Set(tokenHeader, a.config.Token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeTransportError, time.Since(start))
		return &ports.UpstreamError{Message: "admin API request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeHTTPError, time.Since(start))
		return &ports.UpstreamError{Message: fmt.Sprintf("admin API returned status %d", resp.StatusCode)}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeDecodeError, time.Since(start))
		return &ports.UpstreamError{Message: "admin API response could not be decoded", Err: err}
	}

	if len(envelope.Errors) > 0 {
		metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeAPIError, time.Since(start))
		return &ports.UpstreamError{Message: "admin API reported errors: " + joinErrors(envelope.Errors)}
	}

	if data != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, data); err != nil {
			metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeDecodeError, time.Since(start))
			return &ports.UpstreamError{Message: "admin API response could not be decoded", Err: err}
		}
	}

	metrics.ObserveUpstream(config.ProtocolGraphQL, operation, metrics.OutcomeOK, time.Since(start))
	return nil
}

// buildSearchQuery widens the user's code into the platform search syntax.
// Single quotes would break the syntax, so they are stripped.
func buildSearchQuery(code string) string {
	safe := strings.ReplaceAll(code, "'", "")

	clauses := []string{
		fmt.Sprintf("name:'%s'", safe),
		fmt.Sprintf("name:'#%s'", safe),
	}
	if digits := digitsOf(safe); digits != "" {
		clauses = append(clauses, "order_number:"+digits)
	}
	return strings.Join(clauses, " OR ")
}

// digitsOf keeps only ASCII digits, e.g. "LS74193" becomes "74193".
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func joinErrors(errs []graphQLError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}

// mapGraphQLOrder converts a GraphQL order node into the domain entity. The
// numeric order number stays zero: this surface does not expose one.
func mapGraphQLOrder(node gqlOrder) domain.Order {
	order := domain.Order{
		ID:   node.ID,
		Name: node.Name,
	}
	if node.ShippingAddress != nil {
		order.ShippingPostcode = node.ShippingAddress.Zip
	}
	if node.BillingAddress != nil {
		order.BillingPostcode = node.BillingAddress.Zip
	}

	for _, f := range node.Fulfillments {
		order.Fulfillments = append(order.Fulfillments, mapGraphQLFulfillment(f))
	}

	for _, edge := range node.LineItems.Edges {
		item := domain.LineItem{
			Title:    edge.Node.Title,
			Quantity: edge.Node.Quantity,
		}
		if variant := edge.Node.Variant; variant != nil {
			item.SKU = variant.SKU
			if product := variant.Product; product != nil {
				item.ProductTitle = product.Title
				item.Handle = product.Handle
				if product.FeaturedImage != nil {
					item.ImageURL = product.FeaturedImage.URL
				}
			}
		}
		order.LineItems = append(order.LineItems, item)
	}

	return order
}

// mapGraphQLFulfillment flattens trackingInfo entries into the domain shape:
// numbered entries fill the parallel lists, a number-less entry with a URL
// becomes the legacy single URL so composition still emits it.
func mapGraphQLFulfillment(f gqlFulfillment) domain.Fulfillment {
	var out domain.Fulfillment

	for _, info := range f.TrackingInfo {
		if info.Company != "" && out.Company == "" {
			out.Company = info.Company
		}
		if info.Number != "" {
			out.TrackingNumbers = append(out.TrackingNumbers, info.Number)
			out.TrackingURLs = append(out.TrackingURLs, info.URL)
			continue
		}
		if info.URL != "" && out.TrackingURL == "" {
			out.TrackingURL = info.URL
		}
	}

	return out
}

// internal structs for mapping

// graphQLRequest is the POST body of every GraphQL call.
type graphQLRequest struct {
	// Query is the GraphQL document.
	Query string `json:"query"`
	// Variables carries the document's variable bindings.
	Variables map[string]string `json:"variables,omitempty"`
}

// graphQLResponse is the generic GraphQL envelope.
type graphQLResponse struct {
	// Data is the operation payload, decoded per call site.
	Data json.RawMessage `json:"data"`
	// Errors is the top-level error list; non-empty means the call failed.
	Errors []graphQLError `json:"errors"`
}

// graphQLError is one entry of the top-level errors list.
type graphQLError struct {
	// Message is the API-provided error text.
	Message string `json:"message"`
}

// ordersQueryData is the data payload of orderLookupQuery.
type ordersQueryData struct {
	Orders struct {
		Edges []struct {
			Node gqlOrder `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

// gqlOrder represents an order node from the Admin GraphQL API.
type gqlOrder struct {
	// ID is the order gid, e.g. "gid://shopify/Order/123".
	ID string `json:"id"`
	// Name is the customer-facing order code.
	Name string `json:"name"`
	// ShippingAddress may be null for digital orders.
	ShippingAddress *gqlAddress `json:"shippingAddress"`
	// BillingAddress may be null as well.
	BillingAddress *gqlAddress `json:"billingAddress"`
	// Fulfillments holds the shipment records.
	Fulfillments []gqlFulfillment `json:"fulfillments"`
	// LineItems is the embedded line item connection.
	LineItems struct {
		Edges []struct {
			Node gqlLineItem `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

// gqlAddress carries the postcode of an order address.
type gqlAddress struct {
	// Zip is the raw postcode.
	Zip string `json:"zip"`
}

// gqlFulfillment represents a shipment with its tracking entries.
type gqlFulfillment struct {
	// TrackingInfo lists the tracking records of this shipment.
	TrackingInfo []gqlTrackingInfo `json:"trackingInfo"`
}

// gqlTrackingInfo is one tracking record.
type gqlTrackingInfo struct {
	// Number is the tracking number, possibly empty.
	Number string `json:"number"`
	// URL is the carrier tracking link, possibly empty.
	URL string `json:"url"`
	// Company is the carrier name, possibly empty.
	Company string `json:"company"`
}

// gqlLineItem represents a purchased line with embedded variant and product.
type gqlLineItem struct {
	// Title is the line's title snapshot.
	Title string `json:"title"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// Variant is null when the variant was deleted.
	Variant *gqlVariant `json:"variant"`
}

// gqlVariant carries the SKU and its parent product.
type gqlVariant struct {
	// SKU is the variant SKU, possibly empty.
	SKU string `json:"sku"`
	// Product is null when the product was deleted.
	Product *gqlProduct `json:"product"`
}

// gqlProduct carries the storefront-facing product fields.
type gqlProduct struct {
	// Title is the live product title.
	Title string `json:"title"`
	// Handle is the storefront URL handle.
	Handle string `json:"handle"`
	// FeaturedImage is null when the product has no image.
	FeaturedImage *gqlImage `json:"featuredImage"`
}

// gqlImage holds an image URL.
type gqlImage struct {
	// URL is the image location.
	URL string `json:"url"`
}
