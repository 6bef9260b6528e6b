package models

// ServiceOption represents one bookable volume tier from the static catalog.
type ServiceOption struct {
	ID          string   `json:"id"`          // Catalog identifier (e.g. "2-yard")
	Name        string   `json:"name"`        // Display name (e.g. "2-Yard")
	Price       int      `json:"price"`       // Whole pounds, VAT inclusive
	Description string   `json:"description"` // Short sizing guidance
	Features    []string `json:"features"`    // Ordered feature bullets
}

// PricedItem is a single entry from the per-item price list.
type PricedItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // Whole pounds per unit
}

// ItemCategory groups priced items for display.
type ItemCategory struct {
	Category string       `json:"category"`
	Items    []PricedItem `json:"items"`
}
