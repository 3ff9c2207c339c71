package cart

import (
	"math"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
)

// TaxRate is the flat sales tax applied to every cart.
const TaxRate = 0.06

// Add puts a product into the cart. The submitted quantity is validated
// and then discarded: a first add inserts the line at quantity one, and a
// repeat add for the same product increments the existing line's quantity
// by exactly one. Adding n times therefore yields quantity n regardless of
// the quantities submitted along the way.
func (c Cart) Add(productID string, quantity int, color string, snap ProductSnapshot) (Outcome, error) {
	if quantity < 1 {
		return "", apperrors.NewValidationError("quantity", "quantity must be a positive integer")
	}
	if color == "" {
		return "", apperrors.NewValidationError("color", "color is required")
	}
	if snap.Name == "" {
		return "", apperrors.NewValidationError("product", "product snapshot is incomplete")
	}
	if snap.UnitPrice < 0 {
		return "", apperrors.NewValidationError("product", "unit price cannot be negative")
	}

	if line, ok := c[productID]; ok {
		line.Quantity++
		c[productID] = line
		return OutcomeAdded, nil
	}

	c[productID] = LineItem{
		ProductID:       productID,
		Name:            snap.Name,
		UnitPrice:       snap.UnitPrice,
		DiscountPercent: snap.DiscountPercent,
		Color:           color,
		Quantity:        1,
		Image:           snap.Image,
	}
	return OutcomeAdded, nil
}

// Update replaces quantity and color on an existing line. Quantity is
// stored as given; callers are expected to validate it at the boundary.
// A missing product ID leaves the cart untouched and reports not_found.
func (c Cart) Update(productID string, quantity int, color string) Outcome {
	line, ok := c[productID]
	if !ok {
		return OutcomeNotFound
	}
	line.Quantity = quantity
	line.Color = color
	c[productID] = line
	return OutcomeUpdated
}

// Remove deletes a line if present. Removing an absent ID is a no-op, so
// the operation is idempotent.
func (c Cart) Remove(productID string) Outcome {
	if _, ok := c[productID]; !ok {
		return OutcomeNotFound
	}
	delete(c, productID)
	return OutcomeRemoved
}

// Clear empties the cart unconditionally.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

// Totals is the checkout pricing breakdown.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// ComputeTotals prices the cart. The discount is applied to each line's
// unit price only, not to price times quantity; swapping that order
// changes the result, so it is fixed here:
//
//	subtotal = sum(unit_price * quantity) - sum(discount% / 100 * unit_price)
//
// Tax and grand total are rounded half-up to cents at the 6% flat rate.
// An empty cart is a precondition violation the boundary must prevent.
func (c Cart) ComputeTotals() (Totals, error) {
	if len(c) == 0 {
		return Totals{}, apperrors.ErrEmptyCart
	}

	var subtotal float64
	for _, line := range c {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	for _, line := range c {
		subtotal -= float64(line.DiscountPercent) / 100 * line.UnitPrice
	}

	return Totals{
		Subtotal:   subtotal,
		Tax:        round2(subtotal * TaxRate),
		GrandTotal: round2(subtotal * (1 + TaxRate)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
