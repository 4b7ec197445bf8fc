package domain

import "slices"

// ComposeTracking flattens an order's fulfillments into response tracking
// entries.
//
// Per fulfillment, the explicit number list wins and the legacy single number
// is the fallback. Each number is paired with the URL at the same position,
// then with the first URL when the lists don't line up, then with null. A
// fulfillment carrying a URL but no number still yields one entry; one with
// neither is skipped. The result is always non-nil so the payload field
// serializes as an array.
func ComposeTracking(order Order) []TrackingEntry {
	entries := make([]TrackingEntry, 0, len(order.Fulfillments))

	for _, f := range order.Fulfillments {
		numbers := f.TrackingNumbers
		if len(numbers) == 0 && f.TrackingNumber != "" {
			numbers = []string{f.TrackingNumber}
		}

		urls := f.TrackingURLs
		if len(urls) == 0 && f.TrackingURL != "" {
			urls = []string{f.TrackingURL}
		}

		company := optional(firstNonEmpty(f.Company, f.LegacyCompany))

		if len(numbers) == 0 {
			if len(urls) == 0 {
				continue
			}
			entries = append(entries, TrackingEntry{
				Number:  nil,
				URL:     optional(urls[0]),
				Company: company,
			})
			continue
		}

		for i, number := range numbers {
			entries = append(entries, TrackingEntry{
				Number:  ptr(number),
				URL:     optional(urlAt(urls, i)),
				Company: company,
			})
		}
	}

	return entries
}

// urlAt pairs position i with its URL, falling back to the first URL when the
// lists don't align.
func urlAt(urls []string, i int) string {
	if i < len(urls) && urls[i] != "" {
		return urls[i]
	}
	if len(urls) > 0 {
		return urls[0]
	}
	return ""
}

// ComposeLineItems builds one view per line item, the shape the REST source
// produces. Unresolved products degrade to the line item's own title with
// null handle and image.
func ComposeLineItems(order Order) []ItemView {
	views := make([]ItemView, 0, len(order.LineItems))

	for _, item := range order.LineItems {
		skus := []string{}
		if item.SKU != "" {
			skus = append(skus, item.SKU)
		}

		views = append(views, ItemView{
			Title:  firstNonEmpty(item.ProductTitle, item.Title),
			Handle: optional(item.Handle),
			Image:  optional(item.ImageURL),
			SKUs:   skus,
		})
	}

	return views
}

// ComposeItemsByHandle groups line items by product handle, the shape the
// GraphQL source produces: one view per product with the distinct SKUs of its
// purchased variants, in first-seen order. Lines whose product has no handle
// are dropped. Image is the product image or "", never null, and the widget
// treats both the same.
func ComposeItemsByHandle(order Order) []ItemView {
	views := make([]ItemView, 0, len(order.LineItems))
	position := make(map[string]int)

	for _, item := range order.LineItems {
		if item.Handle == "" {
			continue
		}

		idx, seen := position[item.Handle]
		if !seen {
			views = append(views, ItemView{
				Title:  firstNonEmpty(item.ProductTitle, item.Title, item.Handle),
				Handle: ptr(item.Handle),
				Image:  ptr(item.ImageURL),
				SKUs:   []string{},
			})
			idx = len(views) - 1
			position[item.Handle] = idx
		}

		if item.SKU != "" && !slices.Contains(views[idx].SKUs, item.SKU) {
			views[idx].SKUs = append(views[idx].SKUs, item.SKU)
		}
	}

	return views
}

func ptr(s string) *string {
	return &s
}

// optional returns nil for the empty string, a pointer otherwise.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
