package model

// Intent is the structured form of a free-text shopping query.
type Intent struct {
	Category *string  `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	Keywords []string `json:"keywords"`
}

// IsEmpty reports whether no criterion at all was extracted.
func (i Intent) IsEmpty() bool {
	return i.Category == nil && i.MinPrice == nil && i.MaxPrice == nil && len(i.Keywords) == 0
}

// Filter converts the intent into product store filters
func (i Intent) Filter() ProductFilter {
	f := ProductFilter{
		Category: i.Category,
		MinPrice: i.MinPrice,
		MaxPrice: i.MaxPrice,
	}
	if len(i.Keywords) > 0 {
		f.Keywords = append([]string(nil), i.Keywords...)
	}
	return f
}
