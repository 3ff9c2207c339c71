package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// TaxonomyRepository persists brands and categories.
type TaxonomyRepository interface {
	CreateBrand(ctx context.Context, name string) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// PostgresTaxonomyRepository implements TaxonomyRepository over Postgres.
type PostgresTaxonomyRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewPostgresTaxonomyRepository creates a Postgres-backed taxonomy repository.
func NewPostgresTaxonomyRepository(db *sql.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{
		db:     db,
		logger: logging.NewLogger("taxonomy-repository"),
	}
}

// CreateBrand inserts a brand; duplicate names map to ErrDuplicate.
func (r *PostgresTaxonomyRepository) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	b := &models.Brand{ID: "brand_" + uuid.NewString(), Name: name}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO brands (id, name) VALUES ($1, $2)`, b.ID, b.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, err
	}

	r.logger.Info("Brand created", logging.Fields{"brand_id": b.ID, "name": name})
	return b, nil
}

// ListBrands returns all brands by name.
func (r *PostgresTaxonomyRepository) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]*models.Brand, 0)
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}

// DeleteBrand removes a brand.
func (r *PostgresTaxonomyRepository) DeleteBrand(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "brands", id)
}

// CreateCategory inserts a category; duplicate names map to ErrDuplicate.
func (r *PostgresTaxonomyRepository) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	cat := &models.Category{ID: "cat_" + uuid.NewString(), Name: name}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)`, cat.ID, cat.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, err
	}

	r.logger.Info("Category created", logging.Fields{"category_id": cat.ID, "name": name})
	return cat, nil
}

// ListCategories returns all categories by name.
func (r *PostgresTaxonomyRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}

// DeleteCategory removes a category.
func (r *PostgresTaxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "categories", id)
}

func (r *PostgresTaxonomyRepository) deleteByID(ctx context.Context, table, id string) error {
	var query string
	switch table {
	case "brands":
		query = `DELETE FROM brands WHERE id = $1`
	case "categories":
		query = `DELETE FROM categories WHERE id = $1`
	}

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
