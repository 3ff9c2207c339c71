package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agalyaece/e-commerce-website/internal/config"
	"github.com/agalyaece/e-commerce-website/internal/handlers"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

// Server wraps the gin router and the underlying http.Server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	handlers *handlers.Handlers
	httpSrv  *http.Server
}

// New builds the router with all storefront routes.
func New(h *handlers.Handlers, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Features.EnableCatalogMetrics {
		router.Use(metricsMiddleware())
	}
	router.Use(session.Middleware(cfg.Session))

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
	}

	s.setupRoutes()

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		// Admin accounts
		v1.POST("/register", s.handlers.RegisterUser)
		v1.POST("/login", s.handlers.LoginUser)
		v1.POST("/logout", s.handlers.LogoutUser)

		// Customer accounts
		v1.POST("/customers/register", s.handlers.RegisterCustomer)
		v1.POST("/customers/login", s.handlers.LoginCustomer)
		v1.POST("/customers/logout", s.handlers.LogoutCustomer)

		// Public catalog
		v1.GET("/products", s.handlers.ListProducts)
		v1.GET("/products/:id", s.handlers.GetProduct)
		v1.GET("/brands", s.handlers.ListBrands)
		v1.GET("/categories", s.handlers.ListCategories)

		// Cart + checkout
		v1.GET("/cart", s.handlers.GetCart)
		v1.DELETE("/cart", s.handlers.ClearCart)
		v1.GET("/cart/totals", s.handlers.CartTotals)
		v1.POST("/cart/items", s.handlers.AddItem)
		v1.PUT("/cart/items/:product_id", s.handlers.UpdateItem)
		v1.DELETE("/cart/items/:product_id", s.handlers.RemoveItem)
		v1.POST("/checkout", s.handlers.Checkout)

		// Customer order history
		v1.GET("/orders", s.handlers.ListOrders)
		v1.GET("/orders/:invoice", s.handlers.GetOrder)

		// Store management
		admin := v1.Group("/admin")
		admin.Use(s.handlers.RequireAdmin())
		{
			admin.POST("/products", s.handlers.CreateProduct)
			admin.PUT("/products/:id", s.handlers.UpdateProduct)
			admin.DELETE("/products/:id", s.handlers.DeleteProduct)
			admin.POST("/brands", s.handlers.CreateBrand)
			admin.DELETE("/brands/:id", s.handlers.DeleteBrand)
			admin.POST("/categories", s.handlers.CreateCategory)
			admin.DELETE("/categories/:id", s.handlers.DeleteCategory)
		}
	}
}

// Start begins serving; it blocks until the server stops.
func (s *Server) Start() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
