package models

import (
	"time"

	"github.com/agalyaece/e-commerce-website/internal/cart"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderRecord is the durable result of a checkout. LineItems is a deep
// copy of the cart taken at checkout time; it shares no storage with the
// session cart, so clearing or mutating the cart afterwards cannot touch
// a placed order.
type OrderRecord struct {
	Invoice    string          `json:"invoice"`
	CustomerID string          `json:"customer_id"`
	Status     OrderStatus     `json:"status"`
	LineItems  []cart.LineItem `json:"line_items"`
	Subtotal   float64         `json:"subtotal"`
	Tax        float64         `json:"tax"`
	GrandTotal float64         `json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
}
