package product

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"catalog-backend/internal/domains/category"
)

// Product is an item for sale. CategoryID always carries the foreign
// key; Category is populated only when the query plan joined the
// category table (eager fetch). JSON omits the nested category when it
// was not fetched, so clients can tell the two shapes apart.
type Product struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Price       decimal.Decimal    `json:"price"`
	Description *string            `json:"description"`
	CategoryID  int64              `json:"category_id"`
	Category    *category.Category `json:"category,omitempty"`
}

// Summary is the flat projection returned by the native summary query.
type Summary struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"categoryName"`
}

// Detail is the (name, price, categoryName) projection. It is a typed
// record inside the service; on the wire it keeps the legacy 3-tuple
// shape [name, price, categoryName].
type Detail struct {
	Name         string
	Price        decimal.Decimal
	CategoryName string
}

func (d Detail) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{d.Name, d.Price, d.CategoryName})
}
