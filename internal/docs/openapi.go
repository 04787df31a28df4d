// Package docs carries the machine-readable API description served at
// /api/openapi.json. The document is maintained by hand; it describes
// the HTTP surface and is not generated from code.
package docs

// Document returns the OpenAPI 3.0 description of the API.
func Document(version, serverURL string) map[string]interface{} {
	paths := map[string]interface{}{}
	for path, ops := range pathSummaries {
		item := map[string]interface{}{}
		for method, summary := range ops {
			item[method] = map[string]interface{}{
				"summary": summary,
				"tags":    []string{"Product Management"},
			}
		}
		paths[path] = item
	}

	return map[string]interface{}{
		"openapi": "3.0.1",
		"info": map[string]interface{}{
			"title":       "Product Management API",
			"description": "This API exposes endpoints to manage products and categories.",
			"version":     version,
			"license": map[string]interface{}{
				"name": "MIT License",
				"url":  "https://choosealicense.com/licenses/mit/",
			},
		},
		"servers": []map[string]interface{}{
			{"url": serverURL, "description": "Development server"},
		},
		"paths": paths,
	}
}

var pathSummaries = map[string]map[string]string{
	"/api/categories": {
		"post": "Create a new category",
		"get":  "Get all categories",
	},
	"/api/categories/{id}": {
		"get":    "Get category by ID",
		"delete": "Delete a category and its products",
	},
	"/api/products": {
		"post": "Create a new product",
		"get":  "Get all products",
	},
	"/api/products/paginated": {
		"get": "Get products with pagination and sorting",
	},
	"/api/products/{id}": {
		"get":    "Get product by ID with its category",
		"put":    "Update an existing product",
		"delete": "Delete a product",
	},
	"/api/products/by-name": {
		"get": "Find products by exact name",
	},
	"/api/products/price-gt/{price}": {
		"get": "Find products priced above a value",
	},
	"/api/products/by-category-name": {
		"get": "Find products by category name with categories included",
	},
	"/api/products/by-category-id/{categoryId}": {
		"get": "Find products by category ID",
	},
	"/api/products/filter-by-price-and-category": {
		"get": "Find products below a price in a category",
	},
	"/api/products/details-by-category-name": {
		"get": "Project (name, price, categoryName) tuples for a category",
	},
	"/api/products/search": {
		"get": "Search by product name part and category description part",
	},
	"/api/products/price-range-and-category": {
		"get": "Find products in a price range within a category",
	},
	"/api/products/by-category-name-native": {
		"get": "Product summaries for a category",
	},
}
