package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeTracking_AlignedLists(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingNumbers: []string{"A1", "B2"},
		TrackingURLs:    []string{"https://t.example/A1", "https://t.example/B2"},
		Company:         "Royal Mail",
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 2)

	assert.Equal(t, "A1", *entries[0].Number)
	assert.Equal(t, "https://t.example/A1", *entries[0].URL)
	assert.Equal(t, "Royal Mail", *entries[0].Company)
	assert.Equal(t, "B2", *entries[1].Number)
	assert.Equal(t, "https://t.example/B2", *entries[1].URL)
}

// TestComposeTracking_FewerURLs verifies two numbers sharing a single URL
// both point at it.
func TestComposeTracking_FewerURLs(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingNumbers: []string{"A1", "B2"},
		TrackingURLs:    []string{"https://t.example/one"},
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 2)

	assert.Equal(t, "https://t.example/one", *entries[0].URL)
	assert.Equal(t, "https://t.example/one", *entries[1].URL)
}

func TestComposeTracking_NoURLs(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingNumbers: []string{"A1"},
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", *entries[0].Number)
	assert.Nil(t, entries[0].URL)
	assert.Nil(t, entries[0].Company)
}

// TestComposeTracking_LegacySingleFields verifies the single-value fallbacks
// used by older fulfillment records.
func TestComposeTracking_LegacySingleFields(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingNumber: "T100",
		TrackingURL:    "https://t.example/T100",
		LegacyCompany:  "DPD",
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 1)
	assert.Equal(t, "T100", *entries[0].Number)
	assert.Equal(t, "https://t.example/T100", *entries[0].URL)
	assert.Equal(t, "DPD", *entries[0].Company)
}

// TestComposeTracking_URLOnly verifies a fulfillment with only a URL still
// yields an entry with a null number.
func TestComposeTracking_URLOnly(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingURL: "https://t.example/mystery",
		Company:     "Evri",
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Number)
	assert.Equal(t, "https://t.example/mystery", *entries[0].URL)
	assert.Equal(t, "Evri", *entries[0].Company)
}

func TestComposeTracking_EmptyFulfillmentSkipped(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{
		{},
		{TrackingNumbers: []string{"A1"}},
	}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", *entries[0].Number)
}

// TestComposeTracking_CompanyPrecedence verifies the primary company field
// wins over the legacy one.
func TestComposeTracking_CompanyPrecedence(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{{
		TrackingNumbers: []string{"A1"},
		Company:         "Royal Mail",
		LegacyCompany:   "DPD",
	}}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 1)
	assert.Equal(t, "Royal Mail", *entries[0].Company)
}

// TestComposeTracking_AlwaysArray verifies an order without shipments still
// composes to an empty array, not nil.
func TestComposeTracking_AlwaysArray(t *testing.T) {
	entries := ComposeTracking(Order{})
	require.NotNil(t, entries)
	assert.Len(t, entries, 0)
}

func TestComposeTracking_MultipleFulfillments(t *testing.T) {
	order := Order{Fulfillments: []Fulfillment{
		{TrackingNumbers: []string{"A1"}, Company: "Royal Mail"},
		{TrackingNumber: "B2", Company: "DPD"},
	}}

	entries := ComposeTracking(order)
	require.Len(t, entries, 2)
	assert.Equal(t, "A1", *entries[0].Number)
	assert.Equal(t, "B2", *entries[1].Number)
	assert.Equal(t, "DPD", *entries[1].Company)
}

func TestComposeLineItems_Enriched(t *testing.T) {
	order := Order{LineItems: []LineItem{{
		Title:        "Old Snapshot Name",
		SKU:          "SKU-1",
		ProductTitle: "Linen Shirt",
		Handle:       "linen-shirt",
		ImageURL:     "https://img.example/shirt.jpg",
	}}}

	views := ComposeLineItems(order)
	require.Len(t, views, 1)

	assert.Equal(t, "Linen Shirt", views[0].Title)
	assert.Equal(t, "linen-shirt", *views[0].Handle)
	assert.Equal(t, "https://img.example/shirt.jpg", *views[0].Image)
	assert.Equal(t, []string{"SKU-1"}, views[0].SKUs)
}

// TestComposeLineItems_Unresolved verifies a line whose product lookup failed
// keeps its own title with null handle and image.
func TestComposeLineItems_Unresolved(t *testing.T) {
	order := Order{LineItems: []LineItem{{
		Title: "Discontinued Mug",
		SKU:   "MUG-9",
	}}}

	views := ComposeLineItems(order)
	require.Len(t, views, 1)

	assert.Equal(t, "Discontinued Mug", views[0].Title)
	assert.Nil(t, views[0].Handle)
	assert.Nil(t, views[0].Image)
	assert.Equal(t, []string{"MUG-9"}, views[0].SKUs)
}

func TestComposeLineItems_EmptySKU(t *testing.T) {
	order := Order{LineItems: []LineItem{{Title: "Gift Card"}}}

	views := ComposeLineItems(order)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].SKUs)
	assert.Len(t, views[0].SKUs, 0)
}

// TestComposeLineItems_KeepsDuplicates verifies the per-line shape does not
// merge repeated products.
func TestComposeLineItems_KeepsDuplicates(t *testing.T) {
	order := Order{LineItems: []LineItem{
		{Title: "Shirt M", SKU: "S-M", Handle: "shirt"},
		{Title: "Shirt L", SKU: "S-L", Handle: "shirt"},
	}}

	views := ComposeLineItems(order)
	assert.Len(t, views, 2)
}

func TestComposeItemsByHandle_GroupsVariants(t *testing.T) {
	order := Order{LineItems: []LineItem{
		{Title: "Shirt M", SKU: "S-M", Handle: "shirt", ProductTitle: "Linen Shirt", ImageURL: "https://img.example/s.jpg"},
		{Title: "Shirt L", SKU: "S-L", Handle: "shirt", ProductTitle: "Linen Shirt", ImageURL: "https://img.example/s.jpg"},
	}}

	views := ComposeItemsByHandle(order)
	require.Len(t, views, 1)

	assert.Equal(t, "Linen Shirt", views[0].Title)
	assert.Equal(t, "shirt", *views[0].Handle)
	assert.Equal(t, []string{"S-M", "S-L"}, views[0].SKUs)
}

func TestComposeItemsByHandle_DropsHandleless(t *testing.T) {
	order := Order{LineItems: []LineItem{
		{Title: "Deleted Product", SKU: "GONE-1"},
		{Title: "Shirt", SKU: "S-M", Handle: "shirt"},
	}}

	views := ComposeItemsByHandle(order)
	require.Len(t, views, 1)
	assert.Equal(t, "shirt", *views[0].Handle)
}

// TestComposeItemsByHandle_DistinctSKUs verifies a SKU purchased twice shows
// up once.
func TestComposeItemsByHandle_DistinctSKUs(t *testing.T) {
	order := Order{LineItems: []LineItem{
		{SKU: "S-M", Handle: "shirt"},
		{SKU: "S-M", Handle: "shirt"},
		{SKU: "S-L", Handle: "shirt"},
	}}

	views := ComposeItemsByHandle(order)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"S-M", "S-L"}, views[0].SKUs)
}

// TestComposeItemsByHandle_TitlePreference verifies product title, then line
// title, then the handle itself.
func TestComposeItemsByHandle_TitlePreference(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want string
	}{
		{"ProductTitle", LineItem{Handle: "shirt", Title: "Line", ProductTitle: "Product"}, "Product"},
		{"LineTitle", LineItem{Handle: "shirt", Title: "Line"}, "Line"},
		{"HandleFallback", LineItem{Handle: "shirt"}, "shirt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := ComposeItemsByHandle(Order{LineItems: []LineItem{tt.item}})
			require.Len(t, views, 1)
			assert.Equal(t, tt.want, views[0].Title)
		})
	}
}

// TestComposeItemsByHandle_MissingImageIsEmptyString verifies the grouped
// shape uses "" rather than null for a missing image.
func TestComposeItemsByHandle_MissingImageIsEmptyString(t *testing.T) {
	order := Order{LineItems: []LineItem{{SKU: "S-M", Handle: "shirt"}}}

	views := ComposeItemsByHandle(order)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Image)
	assert.Equal(t, "", *views[0].Image)
}

func TestComposeItemsByHandle_FirstSeenOrder(t *testing.T) {
	order := Order{LineItems: []LineItem{
		{SKU: "B-1", Handle: "beanie"},
		{SKU: "S-M", Handle: "shirt"},
		{SKU: "B-2", Handle: "beanie"},
	}}

	views := ComposeItemsByHandle(order)
	require.Len(t, views, 2)
	assert.Equal(t, "beanie", *views[0].Handle)
	assert.Equal(t, "shirt", *views[1].Handle)
	assert.Equal(t, []string{"B-1", "B-2"}, views[0].SKUs)
}
