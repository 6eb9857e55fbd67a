package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func validRaw() Raw {
	return Raw{
		ID:          intPtr(3),
		Title:       strPtr("Organic Cotton Shirt"),
		Price:       floatPtr(19.99),
		Image:       "https://example.com/shirt.png",
		Description: "Soft and fair-trade",
		Category:    "clothing",
	}
}

func TestEnrichMapsFieldsAndStaysInRange(t *testing.T) {
	e := NewEnricher(1)

	for i := 0; i < 500; i++ {
		p, err := e.Enrich(validRaw())
		require.NoError(t, err)

		assert.Equal(t, 3, p.ID)
		assert.Equal(t, "Organic Cotton Shirt", p.Name)
		assert.InDelta(t, 19.99, p.Price, 1e-9)
		assert.Equal(t, "clothing", p.Category)
		assert.True(t, p.InStock)

		assert.GreaterOrEqual(t, p.Score, 70)
		assert.LessOrEqual(t, p.Score, 90)
		assert.GreaterOrEqual(t, p.EcoPoints, 50)
		assert.LessOrEqual(t, p.EcoPoints, 199)
	}
}

func TestEnrichIsSeedable(t *testing.T) {
	a := NewEnricher(42)
	b := NewEnricher(42)

	for i := 0; i < 20; i++ {
		pa, err := a.Enrich(validRaw())
		require.NoError(t, err)
		pb, err := b.Enrich(validRaw())
		require.NoError(t, err)

		assert.Equal(t, pa.Score, pb.Score)
		assert.Equal(t, pa.EcoPoints, pb.EcoPoints)
	}
}

func TestEnrichRejectsMalformedRecords(t *testing.T) {
	e := NewEnricher(1)

	noID := validRaw()
	noID.ID = nil
	_, err := e.Enrich(noID)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	noTitle := validRaw()
	noTitle.Title = nil
	_, err = e.Enrich(noTitle)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	emptyTitle := validRaw()
	emptyTitle.Title = strPtr("")
	_, err = e.Enrich(emptyTitle)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	noPrice := validRaw()
	noPrice.Price = nil
	_, err = e.Enrich(noPrice)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
