package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/Niharikabutola/ECO-CART/models"
)

// ErrMalformedRecord means the upstream record is missing id, title or price.
var ErrMalformedRecord = errors.New("malformed upstream record")

// Raw is a catalog record exactly as the provider returns it. Pointer fields
// distinguish an absent field from a zero value.
type Raw struct {
	ID          *int     `json:"id"`
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

const (
	scoreMin = 70
	scoreMax = 90
	ecoMin   = 50
	ecoMax   = 199
)

// Enricher turns raw catalog records into products by attaching the synthetic
// sustainability metrics. The metrics are drawn fresh on every call, so
// enrichment is NOT deterministic: enriching the same record twice may yield
// different scores. Tests inject a fixed seed to pin the sequence down.
type Enricher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEnricher(seed int64) *Enricher {
	return &Enricher{rng: rand.New(rand.NewSource(seed))}
}

// Enrich maps a raw record into a Product. Missing id, title or price is a
// malformed record; enrichment of one record never depends on its siblings.
func (e *Enricher) Enrich(raw Raw) (models.Product, error) {
	if raw.ID == nil || raw.Title == nil || *raw.Title == "" || raw.Price == nil {
		return models.Product{}, fmt.Errorf("%w: id, title and price are required", ErrMalformedRecord)
	}

	e.mu.Lock()
	score := scoreMin + e.rng.Intn(scoreMax-scoreMin+1)
	eco := ecoMin + e.rng.Intn(ecoMax-ecoMin+1)
	e.mu.Unlock()

	return models.Product{
		ID:          *raw.ID,
		Name:        *raw.Title,
		Price:       *raw.Price,
		Image:       raw.Image,
		Description: raw.Description,
		Category:    raw.Category,
		Score:       score,
		EcoPoints:   eco,
		InStock:     true,
	}, nil
}
