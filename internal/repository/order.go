package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
)

// OrderRepository persists placed orders. Save is the collaborator
// checkout depends on for its persist-then-clear atomicity.
type OrderRepository interface {
	Save(ctx context.Context, order *models.OrderRecord) error
	GetByInvoice(ctx context.Context, invoice string) (*models.OrderRecord, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*models.OrderRecord, int, error)
}

// PostgresOrderRepository implements OrderRepository over Postgres with
// line items stored as a JSONB snapshot.
type PostgresOrderRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewPostgresOrderRepository creates a Postgres-backed order repository.
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db:     db,
		logger: logging.NewLogger("order-repository"),
	}
}

// Save durably records an order.
func (r *PostgresOrderRepository) Save(ctx context.Context, order *models.OrderRecord) error {
	itemsJSON, err := json.Marshal(order.LineItems)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			invoice, customer_id, status, line_items,
			subtotal, tax, grand_total, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.Invoice, order.CustomerID, order.Status, itemsJSON,
		order.Subtotal, order.Tax, order.GrandTotal, order.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save order", logging.Fields{
			"invoice":     order.Invoice,
			"customer_id": order.CustomerID,
			"error":       err.Error(),
		})
		return err
	}

	r.logger.Info("Order saved", logging.Fields{
		"invoice":     order.Invoice,
		"customer_id": order.CustomerID,
		"grand_total": order.GrandTotal,
	})

	return nil
}

const orderColumns = `
	invoice, customer_id, status, line_items,
	subtotal, tax, grand_total, created_at
`

// GetByInvoice retrieves one order.
func (r *PostgresOrderRepository) GetByInvoice(ctx context.Context, invoice string) (*models.OrderRecord, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE invoice = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, invoice))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch order", logging.Fields{
			"invoice": invoice,
			"error":   err.Error(),
		})
		return nil, err
	}

	return order, nil
}

// ListByCustomer pages a customer's orders, newest first.
func (r *PostgresOrderRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*models.OrderRecord, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + `
		FROM orders WHERE customer_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*models.OrderRecord, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, rows.Err()
}

func scanOrder(row rowScanner) (*models.OrderRecord, error) {
	var order models.OrderRecord
	var itemsJSON []byte

	err := row.Scan(
		&order.Invoice, &order.CustomerID, &order.Status, &itemsJSON,
		&order.Subtotal, &order.Tax, &order.GrandTotal, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &order.LineItems); err != nil {
		return nil, err
	}

	return &order, nil
}
