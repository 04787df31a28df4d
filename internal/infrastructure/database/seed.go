package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	pkgdb "catalog-backend/pkg/database"
)

// Seed populates the store with starter rows on first launch. It only
// runs when the category table is empty, so calling it repeatedly is safe.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM category").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		log.Info().Msg("database already seeded, skipping")
		return nil
	}

	// The categories and their products go in together so a partial
	// failure leaves the store empty and the seeder re-runnable.
	err := pkgdb.WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		var electronicsID, booksID int64

		err := tx.QueryRow(ctx,
			`INSERT INTO category (name, description) VALUES ($1, $2) RETURNING id`,
			"Electronics", "Electronic devices and accessories",
		).Scan(&electronicsID)
		if err != nil {
			return fmt.Errorf("seed insert Electronics: %w", err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO category (name, description) VALUES ($1, $2) RETURNING id`,
			"Books", "Physical and digital books",
		).Scan(&booksID)
		if err != nil {
			return fmt.Errorf("seed insert Books: %w", err)
		}

		products := []struct {
			name        string
			price       string
			description string
			categoryID  int64
		}{
			{"Smartphone", "699.99", "Latest model smartphone", electronicsID},
			{"Laptop", "1299.99", "High-performance laptop", electronicsID},
			{"Java Programming", "49.99", "Complete guide to Java", booksID},
		}

		for _, p := range products {
			_, err := tx.Exec(ctx,
				`INSERT INTO products (name, price, description, category_id) VALUES ($1, $2, $3, $4)`,
				p.name, p.price, p.description, p.categoryID,
			)
			if err != nil {
				return fmt.Errorf("seed insert %s: %w", p.name, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Msg("database seeded with starter categories and products")
	return nil
}
