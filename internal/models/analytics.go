package models

// CategoryTotal summarizes spending in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	// Percentage is this category's share of all spending (0-100).
	Percentage float64 `json:"percentage"`
}

// MonthlyTotal summarizes spending in one calendar month.
type MonthlyTotal struct {
	// Month is formatted as YYYY-MM (UTC).
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
