package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/domains/product"
	pkgdb "catalog-backend/pkg/database"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const (
	selectProducts = "SELECT " + productColumns + " FROM products p"
	selectJoined   = "SELECT " + joinedColumns +
		" FROM products p JOIN category c ON p.category_id = c.id"
)

// postgresRepository implements product.Repository with raw SQL over a
// pgx connection pool. Queries documented as eager use selectJoined and
// scan both records from the single joined statement.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) product.Repository {
	return &postgresRepository{pool: pool}
}

// queryLazy runs a product-only query and collects the rows.
func (r *postgresRepository) queryLazy(ctx context.Context, sql string, args ...any) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, product.NewStoreError(err)
	}

	products, err := collectProducts(rows, scanProduct)
	if err != nil {
		return nil, product.NewStoreError(err)
	}
	return products, nil
}

// queryJoined runs a joined query and collects products with their
// categories populated.
func (r *postgresRepository) queryJoined(ctx context.Context, sql string, args ...any) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, product.NewStoreError(err)
	}

	products, err := collectProducts(rows, scanProductJoined)
	if err != nil {
		return nil, product.NewStoreError(err)
	}
	return products, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]product.Product, error) {
	return r.queryLazy(ctx, selectProducts+" ORDER BY p.id")
}

func (r *postgresRepository) ListPaginated(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
	// sort comes from ParseSort, which whitelists both tokens; id is
	// the stable tiebreak for deterministic pages.
	query := fmt.Sprintf(
		"%s ORDER BY p.%s %s, p.id ASC LIMIT $1 OFFSET $2",
		selectProducts, sort.Field, sort.Direction,
	)
	return r.queryLazy(ctx, query, size, page*size)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	row := r.pool.QueryRow(ctx, selectJoined+" WHERE p.id = $1", id)

	p, err := scanProductJoined(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, product.NewStoreError(err)
	}

	return &p, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	return r.queryLazy(ctx, selectProducts+" WHERE p.name = $1 ORDER BY p.id", name)
}

func (r *postgresRepository) FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]product.Product, error) {
	return r.queryLazy(ctx, selectProducts+" WHERE p.price > $1 ORDER BY p.id", price)
}

func (r *postgresRepository) FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+" WHERE p.price BETWEEN $1 AND $2 ORDER BY p.id",
		min, max,
	)
}

func (r *postgresRepository) FindByNameContaining(ctx context.Context, keyword string) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+" WHERE p.name ILIKE '%' || $1 || '%' ORDER BY p.id",
		keyword,
	)
}

func (r *postgresRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+" WHERE p.category_id = $1 ORDER BY p.id",
		categoryID,
	)
}

func (r *postgresRepository) FindByCategoryName(ctx context.Context, categoryName string) ([]product.Product, error) {
	return r.queryJoined(ctx,
		selectJoined+" WHERE c.name = $1 ORDER BY p.id",
		categoryName,
	)
}

func (r *postgresRepository) FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+
			" JOIN category c ON p.category_id = c.id"+
			" WHERE p.price < $1 AND c.name = $2 ORDER BY p.id",
		price, categoryName,
	)
}

func (r *postgresRepository) FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]product.Detail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.name, p.price, c.name
		 FROM products p JOIN category c ON p.category_id = c.id
		 WHERE c.name = $1 ORDER BY p.id`,
		categoryName,
	)
	if err != nil {
		return nil, product.NewStoreError(err)
	}
	defer rows.Close()

	details := make([]product.Detail, 0)
	for rows.Next() {
		var d product.Detail
		if err := rows.Scan(&d.Name, &d.Price, &d.CategoryName); err != nil {
			return nil, product.NewStoreError(err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, product.NewStoreError(err)
	}

	return details, nil
}

func (r *postgresRepository) FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+
			" JOIN category c ON p.category_id = c.id"+
			" WHERE p.name ILIKE '%' || $1 || '%'"+
			" AND c.description ILIKE '%' || $2 || '%' ORDER BY p.id",
		namePart, descPart,
	)
}

func (r *postgresRepository) FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]product.Product, error) {
	return r.queryLazy(ctx,
		selectProducts+
			" WHERE p.price BETWEEN $1 AND $2 AND p.category_id = $3 ORDER BY p.id",
		min, max, categoryID,
	)
}

func (r *postgresRepository) FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]product.Summary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.price, c.name AS category_name
		 FROM products p JOIN category c ON p.category_id = c.id
		 WHERE c.name = $1 ORDER BY p.id`,
		categoryName,
	)
	if err != nil {
		return nil, product.NewStoreError(err)
	}
	defer rows.Close()

	summaries := make([]product.Summary, 0)
	for rows.Next() {
		var s product.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.CategoryName); err != nil {
			return nil, product.NewStoreError(err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, product.NewStoreError(err)
	}

	return summaries, nil
}

// Create runs the name pre-check, the category lookup, and the insert
// in one transaction, closing the check-then-insert race window. The
// unique constraint stays authoritative: a concurrent insert that
// slips past the pre-check still surfaces as a conflict, not a 500.
func (r *postgresRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*product.Product, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`,
			p.Name,
		).Scan(&exists)
		if err != nil {
			return nil, product.NewStoreError(err)
		}
		if exists {
			return nil, product.NewProductNameAlreadyExists(p.Name)
		}

		cat, err := lookupCategory(ctx, tx, p.CategoryID)
		if err != nil {
			return nil, err
		}

		var created product.Product
		err = tx.QueryRow(ctx,
			`INSERT INTO products (name, price, description, category_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, name, price, description, category_id`,
			p.Name, p.Price, p.Description, p.CategoryID,
		).Scan(&created.ID, &created.Name, &created.Price, &created.Description, &created.CategoryID)
		if err != nil {
			return nil, classifyWriteError(err, p)
		}

		created.Category = cat
		return &created, nil
	})
}

// Update overwrites name, price and description, replacing the foreign
// key when a new category id is given. All checks and the update run in
// one transaction; the updated row comes back with its category.
func (r *postgresRepository) Update(ctx context.Context, id int64, upd product.UpdateData) (*product.Product, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*product.Product, error) {
		var currentCategoryID int64
		err := tx.QueryRow(ctx,
			`SELECT category_id FROM products WHERE id = $1`, id,
		).Scan(&currentCategoryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, product.NewProductNotFound(id)
			}
			return nil, product.NewStoreError(err)
		}

		categoryID := currentCategoryID
		if upd.CategoryID != nil {
			categoryID = *upd.CategoryID
		}

		cat, err := lookupCategory(ctx, tx, categoryID)
		if err != nil {
			return nil, err
		}

		var updated product.Product
		err = tx.QueryRow(ctx,
			`UPDATE products
			 SET name = $1, price = $2, description = $3, category_id = $4
			 WHERE id = $5
			 RETURNING id, name, price, description, category_id`,
			upd.Name, upd.Price, upd.Description, categoryID, id,
		).Scan(&updated.ID, &updated.Name, &updated.Price, &updated.Description, &updated.CategoryID)
		if err != nil {
			return nil, classifyWriteError(err, &product.Product{Name: upd.Name, CategoryID: categoryID})
		}

		updated.Category = cat
		return &updated, nil
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, product.NewStoreError(fmt.Errorf("delete product %d: %w", id, err))
	}

	return tag.RowsAffected() > 0, nil
}

// lookupCategory resolves the referenced category inside the write
// transaction, turning a missing row into the domain-level bad-request
// signal.
func lookupCategory(ctx context.Context, tx pgx.Tx, id int64) (*category.Category, error) {
	var cat category.Category
	err := tx.QueryRow(ctx,
		`SELECT id, name, description FROM category WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &cat.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.NewUnknownCategory(id)
		}
		return nil, product.NewStoreError(err)
	}

	return &cat, nil
}

// classifyWriteError maps store constraint violations to their domain
// signals: unique violations are conflicts, foreign-key violations are
// unknown-category bad requests, anything else is internal.
func classifyWriteError(err error, p *product.Product) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return product.NewProductNameAlreadyExists(p.Name)
		case foreignKeyViolation:
			return product.NewUnknownCategory(p.CategoryID)
		}
	}
	return product.NewStoreError(err)
}
