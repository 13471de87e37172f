package repository

import (
	"testing"

	"shopchat/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string      { return &s }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildProductQuery(t *testing.T) {
	const base = "SELECT id, name, category, price, stock, description, image_url FROM products WHERE 1=1"

	tests := []struct {
		name      string
		filter    model.ProductFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			filter:    model.ProductFilter{},
			wantQuery: base + " ORDER BY id",
			wantArgs:  []any{},
		},
		{
			name:      "category is lowercased",
			filter:    model.ProductFilter{Category: strPtr("Electronics")},
			wantQuery: base + " AND LOWER(category) = ? ORDER BY id",
			wantArgs:  []any{"electronics"},
		},
		{
			name: "price range",
			filter: model.ProductFilter{
				MinPrice: float64Ptr(500),
				MaxPrice: float64Ptr(1500),
			},
			wantQuery: base + " AND price >= ? AND price <= ? ORDER BY id",
			wantArgs:  []any{500.0, 1500.0},
		},
		{
			name:   "keywords are ORed",
			filter: model.ProductFilter{Keywords: []string{"running", "Shoes"}},
			wantQuery: base + " AND ((LOWER(name) LIKE ? OR LOWER(description) LIKE ?)" +
				" OR (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)) ORDER BY id",
			wantArgs: []any{"%running%", "%running%", "%shoes%", "%shoes%"},
		},
		{
			name: "all clauses",
			filter: model.ProductFilter{
				Search:   "Smart",
				Category: strPtr("Books"),
				MaxPrice: float64Ptr(99.5),
				Keywords: []string{"novel"},
			},
			wantQuery: base +
				" AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)" +
				" AND LOWER(category) = ?" +
				" AND price <= ?" +
				" AND ((LOWER(name) LIKE ? OR LOWER(description) LIKE ?)) ORDER BY id",
			wantArgs: []any{"%smart%", "%smart%", "books", 99.5, "%novel%", "%novel%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := BuildProductQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
