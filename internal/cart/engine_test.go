package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
)

var shirt = ProductSnapshot{
	Name:            "Linen Shirt",
	UnitPrice:       100.00,
	DiscountPercent: 10,
	Image:           "/static/img/shirt.jpg",
	Colors:          []string{"white", "navy"},
}

var mug = ProductSnapshot{
	Name:      "Enamel Mug",
	UnitPrice: 12.50,
	Image:     "/static/img/mug.jpg",
	Colors:    []string{"red"},
}

func TestAdd_NewLineStartsAtQuantityOne(t *testing.T) {
	c := New()

	out, err := c.Add("p1", 3, "white", shirt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, out)

	line := c["p1"]
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "white", line.Color)
	assert.Equal(t, "Linen Shirt", line.Name)
	assert.Equal(t, 100.00, line.UnitPrice)
	assert.Equal(t, 10, line.DiscountPercent)
}

// The submitted quantity is discarded on every add: the first add inserts
// at one, a repeat add increments by one. Quantities 3 then 5 leave the
// line at 2, not 8.
func TestAdd_RepeatAddIncrementsByOne(t *testing.T) {
	c := New()

	_, err := c.Add("p1", 3, "white", shirt)
	require.NoError(t, err)

	out, err := c.Add("p1", 5, "navy", shirt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, out)

	line := c["p1"]
	assert.Equal(t, 2, line.Quantity)
	// The repeat add touches quantity only.
	assert.Equal(t, "white", line.Color)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		color string
		snap  ProductSnapshot
	}{
		{"zero quantity", 0, "white", shirt},
		{"negative quantity", -2, "white", shirt},
		{"empty color", 1, "", shirt},
		{"incomplete snapshot", 1, "white", ProductSnapshot{}},
		{"negative price", 1, "white", ProductSnapshot{Name: "x", UnitPrice: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, err := c.Add("p1", tt.qty, tt.color, tt.snap)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, c)
		})
	}
}

func TestAdd_SnapshotIsCopiedNotLinked(t *testing.T) {
	c := New()
	snap := shirt

	_, err := c.Add("p1", 1, "white", snap)
	require.NoError(t, err)

	// A later catalog price change must not touch the existing line.
	snap.UnitPrice = 999.99
	assert.Equal(t, 100.00, c["p1"].UnitPrice)
}

func TestUpdate_ReplacesQuantityAndColor(t *testing.T) {
	c := New()
	_, err := c.Add("p1", 2, "white", shirt)
	require.NoError(t, err)

	out := c.Update("p1", 7, "navy")
	assert.Equal(t, OutcomeUpdated, out)
	assert.Equal(t, 7, c["p1"].Quantity)
	assert.Equal(t, "navy", c["p1"].Color)
}

// Updating an absent product reports not_found and leaves the cart
// unchanged.
func TestUpdate_MissingProductIsNoOp(t *testing.T) {
	c := New()
	_, err := c.Add("p1", 2, "white", shirt)
	require.NoError(t, err)
	before := c.Clone()

	out := c.Update("ghost", 5, "navy")
	assert.Equal(t, OutcomeNotFound, out)
	assert.Equal(t, before, c)
}

func TestRemove_Idempotent(t *testing.T) {
	c := New()
	_, err := c.Add("p1", 1, "white", shirt)
	require.NoError(t, err)

	assert.Equal(t, OutcomeRemoved, c.Remove("p1"))
	assert.Equal(t, OutcomeNotFound, c.Remove("p1"))
	assert.Empty(t, c)
}

func TestClear_Idempotent(t *testing.T) {
	c := New()
	_, err := c.Add("p1", 1, "white", shirt)
	require.NoError(t, err)
	_, err = c.Add("p2", 2, "red", mug)
	require.NoError(t, err)

	c.Clear()
	assert.Empty(t, c)

	c.Clear()
	assert.Empty(t, c)
}

// One line at 100.00, 10% discount, quantity 2.
// subtotal = 200.00 - 10.00 = 190.00; tax = 11.40; grand total = 201.40.
func TestComputeTotals_DiscountOnUnitPriceOnly(t *testing.T) {
	c := New()
	_, err := c.Add("p1", 1, "white", shirt)
	require.NoError(t, err)
	require.Equal(t, OutcomeUpdated, c.Update("p1", 2, "white"))

	totals, err := c.ComputeTotals()
	require.NoError(t, err)

	assert.InDelta(t, 190.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 11.40, totals.Tax, 1e-9)
	assert.InDelta(t, 201.40, totals.GrandTotal, 1e-9)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	forward := New()
	_, _ = forward.Add("p1", 1, "white", shirt)
	forward.Update("p1", 2, "white")
	_, _ = forward.Add("p2", 1, "red", mug)
	forward.Update("p2", 3, "red")

	backward := New()
	_, _ = backward.Add("p2", 1, "red", mug)
	backward.Update("p2", 3, "red")
	_, _ = backward.Add("p1", 1, "white", shirt)
	backward.Update("p1", 2, "white")

	a, err := forward.ComputeTotals()
	require.NoError(t, err)
	b, err := backward.ComputeTotals()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeTotals_Deterministic(t *testing.T) {
	c := New()
	_, _ = c.Add("p1", 1, "white", shirt)
	c.Update("p1", 2, "white")
	_, _ = c.Add("p2", 1, "red", mug)
	c.Update("p2", 3, "red")

	first, err := c.ComputeTotals()
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := c.ComputeTotals()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTotals_EmptyCartViolatesPrecondition(t *testing.T) {
	_, err := New().ComputeTotals()
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestSnapshot_DeepCopyInStableOrder(t *testing.T) {
	c := New()
	_, _ = c.Add("p2", 1, "red", mug)
	_, _ = c.Add("p1", 1, "white", shirt)
	c.Update("p1", 2, "white")

	items := c.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)

	// Mutating the cart afterwards must not reach into the snapshot.
	c.Update("p1", 99, "navy")
	c.Clear()
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "white", items[0].Color)
}
