package model

// Product represents a catalog item
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	Description *string `json:"description" db:"description"`
	ImageURL    *string `json:"image_url" db:"image_url"`
}

// ProductFilter holds the optional predicates of a product query.
// Every nil/empty field is left out of the query.
type ProductFilter struct {
	Category *string  `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Search   string   `json:"search,omitempty"`   // ANDed substring match on name/description
	Keywords []string `json:"keywords,omitempty"` // ORed substring matches on name/description
}

// IsEmpty reports whether the filter matches the whole catalog
func (f ProductFilter) IsEmpty() bool {
	return f.Category == nil && f.MinPrice == nil && f.MaxPrice == nil && f.Search == "" && len(f.Keywords) == 0
}
