package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/cart"
	"github.com/agalyaece/e-commerce-website/internal/events"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

func testCatalog() *stubCatalog {
	return &stubCatalog{products: map[string]*models.Product{
		"p1": {
			ID:              "p1",
			Name:            "Linen Shirt",
			Price:           100.00,
			DiscountPercent: 10,
			Colors:          []string{"white", "navy"},
			Image1:          "/static/img/shirt.jpg",
		},
		"p2": {
			ID:     "p2",
			Name:   "Enamel Mug",
			Price:  12.50,
			Colors: []string{"red"},
			Image1: "/static/img/mug.jpg",
		},
	}}
}

// The publisher parameter is the interface, not the stub type: a nil
// stub pointer would make it past Checkout's nil guard as a typed nil.
func newTestCartService(orders *stubOrderRepo, pub events.Publisher) (*CartService, *memSessionStore) {
	sessions := newMemSessionStore()
	svc := NewCartService(sessions, testCatalog(), orders, &stubInvoices{token: "INV-test"}, pub)
	return svc, sessions
}

func TestAddItem_SnapshotsCatalogData(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	out, err := svc.AddItem(ctx, "sess1", "p1", 2, "white")
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeAdded, out)

	c, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	line := c["p1"]
	assert.Equal(t, "Linen Shirt", line.Name)
	assert.Equal(t, 100.00, line.UnitPrice)
	assert.Equal(t, 10, line.DiscountPercent)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddItem_UnknownProductIsNotFoundNoOp(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	out, err := svc.AddItem(ctx, "sess1", "ghost", 1, "white")
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeNotFound, out)

	c, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestAddItem_RepeatAddAcrossRequests(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	// The cart survives the session round-trip between the two adds, so
	// the add policy applies across requests: insert at one, then
	// increment by one. Submitted quantities 3 then 5 yield 2.
	_, err := svc.AddItem(ctx, "sess1", "p1", 3, "white")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess1", "p1", 5, "white")
	require.NoError(t, err)

	c, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, 2, c["p1"].Quantity)
}

func TestUpdateItem_NotFoundLeavesCartAlone(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)
	before, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)

	out, err := svc.UpdateItem(ctx, "sess1", "ghost", 4, "navy")
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeNotFound, out)

	after, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)

	out, err := svc.RemoveItem(ctx, "sess1", "p1")
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeRemoved, out)

	out, err = svc.RemoveItem(ctx, "sess1", "p1")
	require.NoError(t, err)
	assert.Equal(t, cart.OutcomeNotFound, out)
}

func TestTotals_EmptyCart(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)

	_, err := svc.Totals(context.Background(), "sess1")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCheckout_RequiresLogin(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderRepo{}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sess1")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func loginSession(t *testing.T, sessions *memSessionStore, id, customerID string) {
	t.Helper()
	sess, err := sessions.Get(context.Background(), id)
	require.NoError(t, err)
	sess.CustomerID = customerID
	require.NoError(t, sessions.Save(context.Background(), sess))
}

func TestCheckout_EmptyCartViolatesPrecondition(t *testing.T) {
	svc, sessions := newTestCartService(&stubOrderRepo{}, nil)
	loginSession(t, sessions, "sess1", "cust_1")

	_, err := svc.Checkout(context.Background(), "sess1")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCheckout_PersistsThenClears(t *testing.T) {
	orders := &stubOrderRepo{}
	pub := &stubPublisher{}
	svc, sessions := newTestCartService(orders, pub)
	ctx := context.Background()
	loginSession(t, sessions, "sess1", "cust_1")

	// Two adds leave the line at quantity two.
	_, err := svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, "sess1")
	require.NoError(t, err)

	assert.Equal(t, "INV-test", order.Invoice)
	assert.Equal(t, "cust_1", order.CustomerID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.LineItems, 1)
	assert.InDelta(t, 190.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 11.40, order.Tax, 1e-9)
	assert.InDelta(t, 201.40, order.GrandTotal, 1e-9)

	require.Len(t, orders.saved, 1)
	require.Len(t, pub.created, 1)

	c, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	assert.Empty(t, c)
}

// Checkout atomicity: when persistence fails the cart must come back
// bit-for-bit identical, and nothing may be published as created.
func TestCheckout_FailedPersistenceKeepsCart(t *testing.T) {
	orders := &stubOrderRepo{saveErr: errors.New("db down")}
	pub := &stubPublisher{}
	svc, sessions := newTestCartService(orders, pub)
	ctx := context.Background()
	loginSession(t, sessions, "sess1", "cust_1")

	_, err := svc.AddItem(ctx, "sess1", "p1", 2, "white")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess1", "p2", 1, "red")
	require.NoError(t, err)

	before, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sess1")
	var perr *apperrors.PersistenceError
	require.ErrorAs(t, err, &perr)

	after, err := svc.GetCart(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Empty(t, pub.created)
	assert.Equal(t, []string{"cust_1"}, pub.failed)
}

// The persisted order holds a deep copy; mutating the old
// cart value afterwards must not alter the record.
func TestCheckout_OrderSnapshotIsIsolated(t *testing.T) {
	orders := &stubOrderRepo{}
	svc, sessions := newTestCartService(orders, nil)
	ctx := context.Background()
	loginSession(t, sessions, "sess1", "cust_1")

	_, err := svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess1", "p1", 1, "white")
	require.NoError(t, err)

	// Retain a reference to the live cart value, as a careless caller might.
	sess, err := sessions.Get(ctx, "sess1")
	require.NoError(t, err)
	retained := sess.Cart

	order, err := svc.Checkout(ctx, "sess1")
	require.NoError(t, err)

	retained.Update("p1", 99, "navy")
	retained.Clear()

	saved, err := orders.GetByInvoice(ctx, order.Invoice)
	require.NoError(t, err)
	require.Len(t, saved.LineItems, 1)
	assert.Equal(t, 2, saved.LineItems[0].Quantity)
	assert.Equal(t, "white", saved.LineItems[0].Color)
}
