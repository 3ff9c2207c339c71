package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agalyaece/e-commerce-website/internal/cart"
	"github.com/agalyaece/e-commerce-website/internal/service"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
}

type updateItemRequest struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

// GetCart handles GET /api/v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	sessionID := session.IDFromContext(c)

	current, err := h.carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := gin.H{"items": current.Snapshot(), "count": len(current)}
	if len(current) > 0 {
		if totals, err := current.ComputeTotals(); err == nil {
			resp["totals"] = totals
		}
	}

	c.JSON(http.StatusOK, resp)
}

// AddItem handles POST /api/v1/cart/items
func (h *Handlers) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := service.ValidateAddItemRequest(req.ProductID, req.Quantity, req.Color); err != nil {
		handleError(c, err)
		return
	}

	sessionID := session.IDFromContext(c)
	outcome, err := h.carts.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity, req.Color)
	if err != nil {
		handleError(c, err)
		return
	}

	// An unknown product is a quiet no-op; the outcome still tells the
	// client what happened.
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": outcomeMessage(outcome),
	})
}

// UpdateItem handles PUT /api/v1/cart/items/:product_id
func (h *Handlers) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := service.ValidateUpdateItemRequest(req.Quantity, req.Color); err != nil {
		handleError(c, err)
		return
	}

	sessionID := session.IDFromContext(c)
	outcome, err := h.carts.UpdateItem(c.Request.Context(), sessionID, c.Param("product_id"), req.Quantity, req.Color)
	if err != nil {
		handleError(c, err)
		return
	}

	if outcome == cart.OutcomeNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"outcome": outcome,
			"message": outcomeMessage(outcome),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": outcomeMessage(outcome),
	})
}

// RemoveItem handles DELETE /api/v1/cart/items/:product_id
func (h *Handlers) RemoveItem(c *gin.Context) {
	sessionID := session.IDFromContext(c)

	outcome, err := h.carts.RemoveItem(c.Request.Context(), sessionID, c.Param("product_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	// Removing an absent line still answers 200; the operation is
	// idempotent.
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": outcomeMessage(outcome),
	})
}

// ClearCart handles DELETE /api/v1/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	sessionID := session.IDFromContext(c)

	if err := h.carts.ClearCart(c.Request.Context(), sessionID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// CartTotals handles GET /api/v1/cart/totals
func (h *Handlers) CartTotals(c *gin.Context) {
	sessionID := session.IDFromContext(c)

	totals, err := h.carts.Totals(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Checkout handles POST /api/v1/checkout
func (h *Handlers) Checkout(c *gin.Context) {
	sessionID := session.IDFromContext(c)

	order, err := h.carts.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"outcome": cart.OutcomeCheckedOut,
		"message": outcomeMessage(cart.OutcomeCheckedOut),
		"order":   order,
	})
}

func outcomeMessage(outcome cart.Outcome) string {
	switch outcome {
	case cart.OutcomeAdded:
		return "item added to your cart"
	case cart.OutcomeUpdated:
		return "cart updated"
	case cart.OutcomeRemoved:
		return "item removed from your cart"
	case cart.OutcomeNotFound:
		return "item not found"
	case cart.OutcomeCheckedOut:
		return "your order has been placed"
	case cart.OutcomeCheckoutFailed:
		return "your order could not be placed"
	default:
		return ""
	}
}
