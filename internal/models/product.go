package models

import "time"

// Product is a catalog entry. Carts copy pricing fields out of it at
// add time; they never reference it live.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	Stock           int       `json:"stock"`
	Colors          []string  `json:"colors"`
	BrandID         string    `json:"brand_id"`
	CategoryID      string    `json:"category_id"`
	Image1          string    `json:"image_1"`
	Image2          string    `json:"image_2,omitempty"`
	Image3          string    `json:"image_3,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Brand is a product manufacturer label.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups products.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProductRequest is the admin product creation payload.
type CreateProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountPercent int      `json:"discount_percent"`
	Stock           int      `json:"stock"`
	Colors          []string `json:"colors"`
	BrandID         string   `json:"brand_id"`
	CategoryID      string   `json:"category_id"`
	Image1          string   `json:"image_1"`
	Image2          string   `json:"image_2"`
	Image3          string   `json:"image_3"`
}

// ProductListFilter selects a catalog page.
type ProductListFilter struct {
	Search     string
	BrandID    string
	CategoryID string
	Limit      int
	Offset     int
}
