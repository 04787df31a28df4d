package category

// Category groups products. The owned products are never materialized
// on the record; queries either return products with an embedded
// category snapshot, or a category on its own. This keeps the
// serialization graph acyclic.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
