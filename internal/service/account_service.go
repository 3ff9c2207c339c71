package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
	"github.com/agalyaece/e-commerce-website/internal/repository"
)

// AccountService handles registration and login for admin users and
// shopper customers.
type AccountService struct {
	accounts repository.AccountRepository
	logger   *logging.Logger
}

// NewAccountService creates an account service.
func NewAccountService(accounts repository.AccountRepository) *AccountService {
	return &AccountService{
		accounts: accounts,
		logger:   logging.NewLogger("account-service"),
	}
}

// RegisterUser creates an admin account. A duplicate email surfaces as a
// validation error telling the user to log in instead.
func (s *AccountService) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error) {
	if err := ValidateRegisterUserRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.accounts.CreateUser(ctx, u); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "an account with this email already exists, please log in")
		}
		return nil, err
	}

	s.logger.Info("User registered", logging.Fields{"user_id": u.ID})
	return u, nil
}

// LoginUser checks admin credentials.
func (s *AccountService) LoginUser(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	u, err := s.accounts.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return u, nil
}

// RegisterCustomer creates a shopper account.
func (s *AccountService) RegisterCustomer(ctx context.Context, req *models.RegisterCustomerRequest) (*models.Customer, error) {
	if err := ValidateRegisterCustomerRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Country:      req.Country,
		State:        req.State,
		City:         req.City,
		Contact:      req.Contact,
		Address:      req.Address,
		ZipCode:      req.ZipCode,
		ProfileImage: req.ProfileImage,
	}

	if err := s.accounts.CreateCustomer(ctx, c); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "an account with this email already exists, please log in")
		}
		return nil, err
	}

	s.logger.Info("Customer registered", logging.Fields{"customer_id": c.ID})
	return c, nil
}

// LoginCustomer checks shopper credentials; the handler binds the returned
// customer into the session.
func (s *AccountService) LoginCustomer(ctx context.Context, req *models.LoginRequest) (*models.Customer, error) {
	c, err := s.accounts.GetCustomerByEmail(ctx, req.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return c, nil
}
