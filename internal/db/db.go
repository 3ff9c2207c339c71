package db

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/agalyaece/e-commerce-website/internal/config"
	"github.com/agalyaece/e-commerce-website/internal/logging"
)

// Open connects to Postgres and tunes the connection pool.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	logging.NewLogger("db").Info("Database connected", logging.Fields{
		"host": cfg.Host,
		"name": cfg.Name,
	})

	return conn, nil
}
