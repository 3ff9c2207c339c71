package models

import "time"

// User is an admin account for the store-management surface.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Customer is a shopper account.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Country      string    `json:"country"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	ZipCode      string    `json:"zipcode"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterUserRequest is the admin registration payload.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// RegisterCustomerRequest is the shopper registration payload.
type RegisterCustomerRequest struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirm      string `json:"confirm"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Contact      string `json:"contact"`
	Address      string `json:"address"`
	ZipCode      string `json:"zipcode"`
	ProfileImage string `json:"profile_image"`
}

// LoginRequest is shared by both login surfaces.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
