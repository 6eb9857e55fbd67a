package models

import "time"

// Order is an immutable snapshot of a checked-out cart. IDs are sequential
// starting at 1 and are never reused; orders accumulate for the life of the
// process.
type Order struct {
	ID          int        `json:"id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	EcoPoints   int        `json:"ecoPoints"`
	Date        time.Time  `json:"date"`
}
