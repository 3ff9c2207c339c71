package service

import (
	"context"
	"errors"
	"time"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/cart"
	"github.com/agalyaece/e-commerce-website/internal/events"
	"github.com/agalyaece/e-commerce-website/internal/invoice"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
	"github.com/agalyaece/e-commerce-website/internal/repository"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

// ProductCatalog is the catalog lookup consumed when adding to a cart.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// CartService orchestrates the cart engine against the session store, the
// product catalog, and the order persistence collaborator.
type CartService struct {
	sessions  session.Store
	catalog   ProductCatalog
	orders    repository.OrderRepository
	invoices  invoice.Generator
	publisher events.Publisher
	logger    *logging.Logger
}

// NewCartService creates a cart service. publisher may be nil when order
// events are disabled.
func NewCartService(
	sessions session.Store,
	catalog ProductCatalog,
	orders repository.OrderRepository,
	invoices invoice.Generator,
	publisher events.Publisher,
) *CartService {
	return &CartService{
		sessions:  sessions,
		catalog:   catalog,
		orders:    orders,
		invoices:  invoices,
		publisher: publisher,
		logger:    logging.NewLogger("cart-service"),
	}
}

// GetCart returns the session's current cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// AddItem resolves the product, snapshots its catalog data into the cart,
// and saves the session. An unknown product leaves the cart untouched and
// reports not_found instead of failing.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int, color string) (cart.Outcome, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Add to cart for unknown product", logging.Fields{
			"session_id": sessionID,
			"product_id": productID,
		})
		return cart.OutcomeNotFound, nil
	}
	if err != nil {
		return "", err
	}

	snap := cart.ProductSnapshot{
		Name:            product.Name,
		UnitPrice:       product.Price,
		DiscountPercent: product.DiscountPercent,
		Image:           product.Image1,
		Colors:          product.Colors,
	}

	outcome, err := sess.Cart.Add(productID, quantity, color, snap)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", err
	}

	s.logger.Info("Item added to cart", logging.Fields{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   sess.Cart[productID].Quantity,
	})

	return outcome, nil
}

// UpdateItem replaces quantity and color on an existing line. A missing
// line is reported as not_found so the boundary can message the user; the
// cart itself is untouched in that case.
func (s *CartService) UpdateItem(ctx context.Context, sessionID, productID string, quantity int, color string) (cart.Outcome, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	outcome := sess.Cart.Update(productID, quantity, color)
	if outcome == cart.OutcomeNotFound {
		return outcome, nil
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", err
	}

	return outcome, nil
}

// RemoveItem deletes a line. Removing an absent line is a successful no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (cart.Outcome, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	outcome := sess.Cart.Remove(productID)
	if outcome == cart.OutcomeNotFound {
		return outcome, nil
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", err
	}

	return outcome, nil
}

// ClearCart empties the session's cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.Cart.Clear()
	return s.sessions.Save(ctx, sess)
}

// Totals prices the session's cart. The boundary must not call this for
// an empty cart; ErrEmptyCart comes back if it does.
func (s *CartService) Totals(ctx context.Context, sessionID string) (cart.Totals, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return cart.Totals{}, err
	}
	return sess.Cart.ComputeTotals()
}

// Checkout converts the session's cart into a durable order. The cart is
// cleared only after the order repository acknowledges the save; on a save
// failure the cart is left exactly as it was, so the caller can retry
// without losing state.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.OrderRecord, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.CustomerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	totals, err := sess.Cart.ComputeTotals()
	if err != nil {
		return nil, err
	}

	order := &models.OrderRecord{
		Invoice:    s.invoices.NewToken(),
		CustomerID: sess.CustomerID,
		Status:     models.OrderStatusPending,
		LineItems:  sess.Cart.Snapshot(),
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		GrandTotal: totals.GrandTotal,
		CreatedAt:  time.Now(),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		s.logger.Error("Checkout persistence failed", logging.Fields{
			"session_id":  sessionID,
			"customer_id": sess.CustomerID,
			"error":       err.Error(),
		})
		if s.publisher != nil {
			if pubErr := s.publisher.PublishCheckoutFailed(ctx, sess.CustomerID, err.Error()); pubErr != nil {
				s.logger.Error("Failed to publish checkout failed event", logging.Fields{
					"error": pubErr.Error(),
				})
			}
		}
		return nil, apperrors.NewPersistenceError("checkout", err)
	}

	sess.Cart.Clear()
	if err := s.sessions.Save(ctx, sess); err != nil {
		// The order is durable; a stale cart is recoverable and preferable
		// to failing a placed order.
		s.logger.Error("Failed to clear cart after checkout", logging.Fields{
			"session_id": sessionID,
			"invoice":    order.Invoice,
			"error":      err.Error(),
		})
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			// Log but don't fail; the order itself is already durable.
			s.logger.Error("Failed to publish order created event", logging.Fields{
				"invoice": order.Invoice,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("Checkout completed", logging.Fields{
		"invoice":     order.Invoice,
		"customer_id": order.CustomerID,
		"grand_total": order.GrandTotal,
	})

	return order, nil
}
