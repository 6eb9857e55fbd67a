package models

// Product is a catalog record after enrichment. Score and EcoPoints are
// assigned once, when the record is enriched, and never recomputed for the
// lifetime of the instance; two enrichments of the same upstream record may
// disagree on both.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Score       int     `json:"score"`     // sustainability score, [70,90]
	EcoPoints   int     `json:"ecoPoints"` // loyalty currency, [50,199]
	InStock     bool    `json:"inStock"`
}
