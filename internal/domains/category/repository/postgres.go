package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/category"
	pkgdb "catalog-backend/pkg/database"
)

const uniqueViolation = "23505"

// postgresRepository implements category.Repository with raw SQL
// over a pgx connection pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

// Create runs the uniqueness pre-check and the insert in one
// transaction. The pre-check produces a friendly conflict early; the
// unique constraint remains authoritative for concurrent inserts that
// slip past it.
func (r *postgresRepository) Create(ctx context.Context, cat *category.Category) (*category.Category, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*category.Category, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM category WHERE name = $1)`,
			cat.Name,
		).Scan(&exists)
		if err != nil {
			return nil, category.NewStoreError(err)
		}
		if exists {
			return nil, category.NewCategoryNameAlreadyExists(cat.Name)
		}

		var created category.Category
		err = tx.QueryRow(ctx,
			`INSERT INTO category (name, description)
			 VALUES ($1, $2)
			 RETURNING id, name, description`,
			cat.Name, cat.Description,
		).Scan(&created.ID, &created.Name, &created.Description)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return nil, category.NewCategoryNameAlreadyExists(cat.Name)
			}
			return nil, category.NewStoreError(err)
		}

		return &created, nil
	})
}

func (r *postgresRepository) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM category ORDER BY id`,
	)
	if err != nil {
		return nil, category.NewStoreError(err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, category.NewStoreError(err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, category.NewStoreError(err)
	}

	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	var cat category.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description FROM category WHERE id = $1`,
		id,
	).Scan(&cat.ID, &cat.Name, &cat.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, category.NewStoreError(err)
	}

	return &cat, nil
}

// Delete removes the category row. Products referencing it go with it
// via ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return false, category.NewStoreError(fmt.Errorf("delete category %d: %w", id, err))
	}

	return tag.RowsAffected() > 0, nil
}
