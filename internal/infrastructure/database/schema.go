package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the two catalog tables. Product names and category names
// are unique at the store level; that constraint is the authoritative
// conflict signal for concurrent creates. Deleting a category cascades
// to its products (orphan removal).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL UNIQUE,
		description VARCHAR(500)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL UNIQUE,
		price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		description TEXT,
		category_id BIGINT NOT NULL REFERENCES category(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id)`,
}

// EnsureSchema creates the catalog tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
