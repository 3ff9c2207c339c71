package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// AccountRepository persists admin users and shopper customers.
type AccountRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
}

// PostgresAccountRepository implements AccountRepository over Postgres.
type PostgresAccountRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewPostgresAccountRepository creates a Postgres-backed account repository.
func NewPostgresAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db:     db,
		logger: logging.NewLogger("account-repository"),
	}
}

// CreateUser inserts an admin user.
func (r *PostgresAccountRepository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = "user_" + uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.Name, u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		r.logger.Error("Failed to create user", logging.Fields{
			"email": u.Email,
			"error": err.Error(),
		})
		return err
	}

	r.logger.Info("User created", logging.Fields{"user_id": u.ID})
	return nil
}

// GetUserByEmail looks up an admin user for login.
func (r *PostgresAccountRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateCustomer inserts a shopper account.
func (r *PostgresAccountRepository) CreateCustomer(ctx context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = "cust_" + uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (
			id, name, username, email, password_hash, country, state, city,
			contact, address, zipcode, profile_image, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, c.ID, c.Name, c.Username, c.Email, c.PasswordHash, c.Country, c.State,
		c.City, c.Contact, c.Address, c.ZipCode, c.ProfileImage, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		r.logger.Error("Failed to create customer", logging.Fields{
			"email": c.Email,
			"error": err.Error(),
		})
		return err
	}

	r.logger.Info("Customer created", logging.Fields{"customer_id": c.ID})
	return nil
}

const customerColumns = `
	id, name, username, email, password_hash, country, state, city,
	contact, address, zipcode, profile_image, created_at
`

// GetCustomerByEmail looks up a customer for login.
func (r *PostgresAccountRepository) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.getCustomer(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

// GetCustomerByID resolves a session's customer identity.
func (r *PostgresAccountRepository) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.getCustomer(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (r *PostgresAccountRepository) getCustomer(ctx context.Context, query, arg string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Username, &c.Email, &c.PasswordHash,
		&c.Country, &c.State, &c.City, &c.Contact, &c.Address,
		&c.ZipCode, &c.ProfileImage, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
