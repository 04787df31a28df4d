package repository

import (
	"github.com/jackc/pgx/v5"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/domains/product"
)

// Column sets for the two decode shapes. Every read in this package
// selects one of these, so a scan mismatch cannot creep in per-query.
const (
	productColumns = "p.id, p.name, p.price, p.description, p.category_id"
	joinedColumns  = productColumns + ", c.id, c.name, c.description"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct decodes a product-only row. The category stays a bare
// foreign key.
func scanProduct(row rowScanner) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CategoryID)
	return p, err
}

// scanProductJoined decodes a joined row carrying both product and
// category columns into a product with a fully-populated category.
func scanProductJoined(row rowScanner) (product.Product, error) {
	var p product.Product
	var c category.Category
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.CategoryID,
		&c.ID, &c.Name, &c.Description,
	)
	if err != nil {
		return product.Product{}, err
	}
	p.Category = &c
	return p, nil
}

func collectProducts(rows pgx.Rows, scan func(rowScanner) (product.Product, error)) ([]product.Product, error) {
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
