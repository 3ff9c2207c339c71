package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

// RegisterUser handles POST /api/v1/register
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accounts.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginUser handles POST /api/v1/login
func (h *Handlers) LoginUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accounts.LoginUser(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.bindSession(c, func(sess *session.Session) { sess.UserID = user.ID }); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "successfully logged in", "user": user})
}

// LogoutUser handles POST /api/v1/logout
func (h *Handlers) LogoutUser(c *gin.Context) {
	if err := h.bindSession(c, func(sess *session.Session) { sess.UserID = "" }); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// RegisterCustomer handles POST /api/v1/customers/register
func (h *Handlers) RegisterCustomer(c *gin.Context) {
	var req models.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.accounts.RegisterCustomer(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	// Registering logs the customer straight in, matching the storefront
	// flow.
	if err := h.bindSession(c, func(sess *session.Session) { sess.CustomerID = customer.ID }); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// LoginCustomer handles POST /api/v1/customers/login
func (h *Handlers) LoginCustomer(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.accounts.LoginCustomer(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.bindSession(c, func(sess *session.Session) { sess.CustomerID = customer.ID }); err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Customer logged in", logging.Fields{"customer_id": customer.ID})
	c.JSON(http.StatusOK, gin.H{"message": "successfully logged in", "customer": customer})
}

// LogoutCustomer handles POST /api/v1/customers/logout
// The cart survives logout; only the identity binding is dropped.
func (h *Handlers) LogoutCustomer(c *gin.Context) {
	if err := h.bindSession(c, func(sess *session.Session) { sess.CustomerID = "" }); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handlers) bindSession(c *gin.Context, mutate func(*session.Session)) error {
	sessionID := session.IDFromContext(c)
	sess, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		return err
	}
	mutate(sess)
	return h.sessions.Save(c.Request.Context(), sess)
}
