package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

func (h *Handlers) currentCustomerID(c *gin.Context) (string, error) {
	sess, err := h.sessions.Get(c.Request.Context(), session.IDFromContext(c))
	if err != nil {
		return "", err
	}
	if sess.CustomerID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return sess.CustomerID, nil
}

// ListOrders handles GET /api/v1/orders. It pages the logged-in
// customer's order history, newest first.
func (h *Handlers) ListOrders(c *gin.Context) {
	customerID, err := h.currentCustomerID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	limit := 20
	offset := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	orders, total, err := h.orders.ListByCustomer(c.Request.Context(), customerID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetOrder handles GET /api/v1/orders/:invoice. Customers can only see
// their own orders; anything else answers not found.
func (h *Handlers) GetOrder(c *gin.Context) {
	customerID, err := h.currentCustomerID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	order, err := h.orders.GetByInvoice(c.Request.Context(), c.Param("invoice"))
	if err != nil {
		handleError(c, err)
		return
	}

	if order.CustomerID != customerID {
		handleError(c, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, order)
}
