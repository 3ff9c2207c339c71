// Package cart implements the session shopping-cart engine: a pure set of
// operations over a cart value. The owning session layer is the only place
// holding the mapping between requests; every operation takes the current
// value and mutates or returns it without touching any other state.
package cart

import "sort"

// LineItem is one product's presence in a cart. Name, price, discount and
// image are snapshots copied from the catalog at add time; later catalog
// changes never alter an existing line.
type LineItem struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent int     `json:"discount_percent"`
	Color           string  `json:"color"`
	Quantity        int     `json:"quantity"`
	Image           string  `json:"image"`
}

// Cart maps product IDs to line items. Insertion order is irrelevant.
type Cart map[string]LineItem

// New returns an empty cart.
func New() Cart {
	return make(Cart)
}

// Snapshot deep-copies the cart's lines in stable product-ID order.
// Checkout stores the copy so later cart mutations cannot reach into a
// placed order.
func (c Cart) Snapshot() []LineItem {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]LineItem, 0, len(c))
	for _, id := range ids {
		items = append(items, c[id])
	}
	return items
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, line := range c {
		out[id] = line
	}
	return out
}

// ProductSnapshot is the catalog data copied into a new line item.
type ProductSnapshot struct {
	Name            string
	UnitPrice       float64
	DiscountPercent int
	Image           string
	Colors          []string
}

// Outcome is the discriminated result of a cart mutation, consumed by the
// presentation layer to drive user-facing messages.
type Outcome string

const (
	OutcomeAdded          Outcome = "added"
	OutcomeUpdated        Outcome = "updated"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeRemoved        Outcome = "removed"
	OutcomeCheckedOut     Outcome = "checked_out"
	OutcomeCheckoutFailed Outcome = "checkout_failed"
)
