package domain

// Order is the platform-native order record fetched for a single lookup.
// Nothing here is cached or persisted; the struct lives for one request.
type Order struct {
	// ID is the platform identifier: numeric for the REST surface, a gid URI
	// for GraphQL.
	ID string
	// Name is the customer-facing order code, e.g. "#1001" or "LS74193".
	Name string
	// OrderNumber is the numeric order number where the protocol supplies one
	// (REST does, GraphQL does not); zero means absent.
	OrderNumber int64
	// ShippingPostcode is the raw shipping postcode as returned upstream.
	// Comparisons always go through NormalizePostcode.
	ShippingPostcode string
	// BillingPostcode is the raw billing postcode, used as a fallback match.
	BillingPostcode string
	// Fulfillments holds the shipment records attached to the order.
	Fulfillments []Fulfillment
	// LineItems holds the purchased products.
	LineItems []LineItem
}

// Fulfillment is one shipment record on an order. The platform exposes both
// list-shaped and legacy single-value tracking fields; composition prefers
// the lists.
type Fulfillment struct {
	// TrackingNumbers is the explicit list of tracking numbers.
	TrackingNumbers []string
	// TrackingURLs is the URL list paired positionally with TrackingNumbers.
	TrackingURLs []string
	// TrackingNumber is the legacy single-number field.
	TrackingNumber string
	// TrackingURL is the legacy single-URL field.
	TrackingURL string
	// Company is the carrier name.
	Company string
	// LegacyCompany is the older carrier field some records still carry.
	LegacyCompany string
}

// LineItem is one purchased product entry. The product fields are enrichment:
// REST fills them with a follow-up products call, GraphQL embeds them in the
// order query. Zero values mean the product could not be resolved.
type LineItem struct {
	// Title is the line item's own title snapshot.
	Title string
	// SKU is the purchased variant's SKU, possibly empty.
	SKU string
	// Quantity is the number of units purchased.
	Quantity int
	// ProductID links the line to its product on the REST surface.
	ProductID int64

	// ProductTitle is the live product title, preferred over Title.
	ProductTitle string
	// Handle is the product's URL handle on the storefront.
	Handle string
	// ImageURL is the product's primary image.
	ImageURL string
}

// TrackingEntry is one shipment row in the response payload. Number and URL
// are pointers because either can be legitimately absent and the widget
// distinguishes null from empty.
type TrackingEntry struct {
	// Number is the tracking number, null when only a URL is known.
	Number *string `json:"number"`
	// URL is the carrier tracking link, null when none exists.
	URL *string `json:"url"`
	// Company is the carrier name, null when unknown.
	Company *string `json:"company"`
}

// ItemView is one purchased-item row in the response payload. The per-line
// shape leaves Handle and Image null when the product was not resolved; the
// by-handle shape always sets Handle and uses an empty Image string instead.
type ItemView struct {
	// Title is the display title for the item.
	Title string `json:"title"`
	// Handle is the storefront product handle, null when unresolved.
	Handle *string `json:"handle"`
	// Image is the product image URL, null when unresolved.
	Image *string `json:"image"`
	// SKUs lists the variant SKUs under this item, never null.
	SKUs []string `json:"skus"`
}
