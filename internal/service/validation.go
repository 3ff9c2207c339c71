package service

import (
	"net/mail"
	"strings"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// ValidateAddItemRequest checks the cart add payload at the boundary.
func ValidateAddItemRequest(productID string, quantity int, color string) error {
	if productID == "" {
		return apperrors.NewValidationError("product_id", "product ID is required")
	}
	if quantity < 1 {
		return apperrors.NewValidationError("quantity", "quantity must be a positive integer")
	}
	if strings.TrimSpace(color) == "" {
		return apperrors.NewValidationError("color", "color is required")
	}
	return nil
}

// ValidateUpdateItemRequest checks the cart update payload. The engine
// itself stores whatever quantity it is handed, so positivity is enforced
// here at the boundary.
func ValidateUpdateItemRequest(quantity int, color string) error {
	if quantity < 1 {
		return apperrors.NewValidationError("quantity", "quantity must be a positive integer")
	}
	if strings.TrimSpace(color) == "" {
		return apperrors.NewValidationError("color", "color is required")
	}
	return nil
}

// ValidateCreateProductRequest checks an admin product payload.
func ValidateCreateProductRequest(req *models.CreateProductRequest) error {
	if len(req.Name) < 3 || len(req.Name) > 25 {
		return apperrors.NewValidationError("name", "name must be between 3 and 25 characters")
	}
	if req.Price <= 0 {
		return apperrors.NewValidationError("price", "price must be positive")
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return apperrors.NewValidationError("discount_percent", "discount must be between 0 and 100")
	}
	if req.Stock < 0 {
		return apperrors.NewValidationError("stock", "stock cannot be negative")
	}
	if req.Description == "" {
		return apperrors.NewValidationError("description", "description is required")
	}
	if len(req.Colors) == 0 {
		return apperrors.NewValidationError("colors", "at least one color is required")
	}
	return nil
}

// ValidateTaxonomyName checks a brand or category name.
func ValidateTaxonomyName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError(field, field+" name is required")
	}
	if len(name) > 25 {
		return apperrors.NewValidationError(field, field+" name must be at most 25 characters")
	}
	return nil
}

// ValidateRegisterUserRequest checks an admin registration payload.
func ValidateRegisterUserRequest(req *models.RegisterUserRequest) error {
	if err := validateIdentity(req.Name, req.Username, req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password, req.Confirm)
}

// ValidateRegisterCustomerRequest checks a shopper registration payload.
func ValidateRegisterCustomerRequest(req *models.RegisterCustomerRequest) error {
	if err := validateIdentity(req.Name, req.Username, req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password, req.Confirm); err != nil {
		return err
	}
	if req.Country == "" {
		return apperrors.NewValidationError("country", "country is required")
	}
	if req.Address == "" {
		return apperrors.NewValidationError("address", "address is required")
	}
	return nil
}

func validateIdentity(name, username, email string) error {
	if len(name) < 3 || len(name) > 25 {
		return apperrors.NewValidationError("name", "name must be between 3 and 25 characters")
	}
	if len(username) < 3 || len(username) > 25 {
		return apperrors.NewValidationError("username", "username must be between 3 and 25 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewValidationError("email", "please enter a valid email address")
	}
	return nil
}

func validatePassword(password, confirm string) error {
	if len(password) < 3 || len(password) > 25 {
		return apperrors.NewValidationError("password", "password must be between 3 and 25 characters")
	}
	if password != confirm {
		return apperrors.NewValidationError("confirm", "passwords do not match")
	}
	return nil
}
