package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/repository"
	"github.com/agalyaece/e-commerce-website/internal/service"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

// Handlers holds all HTTP handlers for the storefront service.
type Handlers struct {
	carts    *service.CartService
	catalog  *service.CatalogService
	accounts *service.AccountService
	orders   repository.OrderRepository
	sessions session.Store
	logger   *logging.Logger
}

// NewHandlers creates a handlers instance.
func NewHandlers(
	carts *service.CartService,
	catalog *service.CatalogService,
	accounts *service.AccountService,
	orders repository.OrderRepository,
	sessions session.Store,
) *Handlers {
	return &Handlers{
		carts:    carts,
		catalog:  catalog,
		accounts: accounts,
		orders:   orders,
		sessions: sessions,
		logger:   logging.NewLogger("handlers"),
	}
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperrors.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please log in to continue"})
	default:
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": verr.Message,
				"field": verr.Field,
			})
			return
		}

		var perr *apperrors.PersistenceError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "your order could not be saved, your cart has been kept",
				"outcome": "checkout_failed",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
