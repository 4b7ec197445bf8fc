package domain

// MatchMode controls what happens when an order code produced candidates but
// none of their postcodes match.
type MatchMode string

const (
	// MatchStrict reports not-found on a postcode mismatch. The postcode is
	// the only thing standing between a guessed order code and someone else's
	// shipment details, so this is the default.
	MatchStrict MatchMode = "strict"
	// MatchLenient falls back to the first candidate, trusting the order-code
	// match alone. Some shops prefer fewer support tickets over the stricter
	// check.
	MatchLenient MatchMode = "lenient"
)

// Resolve picks the order whose shipping or billing postcode matches target,
// walking candidates in upstream order so the most relevant match wins. The
// second return is false when nothing qualifies. An empty candidate list is
// never resolvable, regardless of mode.
func Resolve(orders []Order, target string, mode MatchMode) (Order, bool) {
	if len(orders) == 0 {
		return Order{}, false
	}

	if want := NormalizePostcode(target); want != "" {
		for _, order := range orders {
			if NormalizePostcode(order.ShippingPostcode) == want {
				return order, true
			}
			if NormalizePostcode(order.BillingPostcode) == want {
				return order, true
			}
		}
	}

	if mode == MatchLenient {
		return orders[0], true
	}
	return Order{}, false
}
