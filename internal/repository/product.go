package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// ProductRepository is the catalog persistence boundary.
type ProductRepository interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, req *models.CreateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *models.ProductListFilter) ([]*models.Product, int, error)
}

// PostgresProductRepository implements ProductRepository over Postgres.
type PostgresProductRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewPostgresProductRepository creates a Postgres-backed product repository.
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{
		db:     db,
		logger: logging.NewLogger("product-repository"),
	}
}

const productColumns = `
	id, name, description, price, discount_percent, stock, colors,
	COALESCE(brand_id, ''), COALESCE(category_id, ''),
	image_1, image_2, image_3, created_at, updated_at
`

// Create inserts a new product.
func (r *PostgresProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	now := time.Now()
	p := &models.Product{
		ID:              "prod_" + uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
		Colors:          req.Colors,
		BrandID:         req.BrandID,
		CategoryID:      req.CategoryID,
		Image1:          req.Image1,
		Image2:          req.Image2,
		Image3:          req.Image3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	colorsJSON, err := json.Marshal(p.Colors)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO products (
			id, name, description, price, discount_percent, stock, colors,
			brand_id, category_id, image_1, image_2, image_3, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.DiscountPercent, p.Stock,
		colorsJSON, p.BrandID, p.CategoryID, p.Image1, p.Image2, p.Image3,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create product", logging.Fields{
			"name":  req.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	r.logger.Info("Product created", logging.Fields{
		"product_id": p.ID,
		"name":       p.Name,
	})

	return p, nil
}

// GetByID retrieves one product.
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch product", logging.Fields{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	return p, nil
}

// Update replaces the mutable fields of a product.
func (r *PostgresProductRepository) Update(ctx context.Context, id string, req *models.CreateProductRequest) (*models.Product, error) {
	colorsJSON, err := json.Marshal(req.Colors)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, discount_percent = $5,
		    stock = $6, colors = $7, brand_id = NULLIF($8, ''),
		    category_id = NULLIF($9, ''), image_1 = $10, image_2 = $11,
		    image_3 = $12, updated_at = $13
		WHERE id = $1
		RETURNING id
	`

	var returnedID string
	err = r.db.QueryRowContext(ctx, query,
		id, req.Name, req.Description, req.Price, req.DiscountPercent,
		req.Stock, colorsJSON, req.BrandID, req.CategoryID,
		req.Image1, req.Image2, req.Image3, time.Now(),
	).Scan(&returnedID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update product", logging.Fields{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes a product.
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	r.logger.Info("Product deleted", logging.Fields{"product_id": id})
	return nil
}

// List pages through the catalog with optional search and filters.
func (r *PostgresProductRepository) List(ctx context.Context, filter *models.ProductListFilter) ([]*models.Product, int, error) {
	baseQuery := ` FROM products WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		baseQuery += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.BrandID != "" {
		args = append(args, filter.BrandID)
		baseQuery += ` AND brand_id = $` + strconv.Itoa(len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		baseQuery += ` AND category_id = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := strconv.Itoa(len(args))

	query := "SELECT " + productColumns + baseQuery +
		" ORDER BY created_at DESC LIMIT $" + limitPos + " OFFSET $" + offsetPos

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var colorsJSON []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPercent,
		&p.Stock, &colorsJSON, &p.BrandID, &p.CategoryID,
		&p.Image1, &p.Image2, &p.Image3, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(colorsJSON, &p.Colors); err != nil {
		return nil, err
	}

	return &p, nil
}
