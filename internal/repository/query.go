package repository

import (
	"strings"

	"shopchat/internal/model"
)

const productColumns = "id, name, category, price, stock, description, image_url"

// textMatchClause matches one term against name or description, case-insensitively
const textMatchClause = "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"

// BuildProductQuery composes a product SELECT from the optional filter
// clauses. Absent fields add nothing, so an empty filter selects the whole
// catalog. Placeholders are "?" and must be rebound for the target driver.
func BuildProductQuery(filter model.ProductFilter) (string, []any) {
	whereClauses := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		whereClauses = append(whereClauses, textMatchClause)
		args = append(args, pattern, pattern)
	}
	if filter.Category != nil {
		whereClauses = append(whereClauses, "LOWER(category) = ?")
		args = append(args, strings.ToLower(*filter.Category))
	}
	if filter.MinPrice != nil {
		whereClauses = append(whereClauses, "price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		whereClauses = append(whereClauses, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}

	// keywords widen the match: any one of them is enough
	if len(filter.Keywords) > 0 {
		keywordClauses := make([]string, 0, len(filter.Keywords))
		for _, kw := range filter.Keywords {
			pattern := likePattern(kw)
			keywordClauses = append(keywordClauses, textMatchClause)
			args = append(args, pattern, pattern)
		}
		whereClauses = append(whereClauses, "("+strings.Join(keywordClauses, " OR ")+")")
	}

	query := "SELECT " + productColumns + " FROM products WHERE " +
		strings.Join(whereClauses, " AND ") + " ORDER BY id"
	return query, args
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
