package services

import (
	"math"

	"github.com/Niharikabutola/ECO-CART/models"
)

// MilestoneThreshold is the eco-point count at which the celebratory
// milestone signal fires and the Silver tier begins.
const MilestoneThreshold = 500

// Tier is a loyalty classification derived from cumulative eco-points.
type Tier struct {
	Name     string `json:"name"`
	Discount string `json:"discount"`
}

var (
	TierBronze = Tier{Name: "Bronze", Discount: "No discount yet"}
	TierSilver = Tier{Name: "Silver", Discount: "20%"}
	TierGold   = Tier{Name: "Gold", Discount: "50% + Free Plant"}
)

// The reward functions are pure and recomputed on every call; the cart can
// mutate between calls, so nothing here is cached.

func TotalItems(cart models.Cart) int {
	total := 0
	for _, entry := range cart {
		total += entry.Quantity
	}
	return total
}

func TotalPrice(cart models.Cart) float64 {
	total := 0.0
	for _, entry := range cart {
		total += float64(entry.Quantity) * entry.Product.Price
	}
	return total
}

func TotalEcoPoints(cart models.Cart) int {
	total := 0
	for _, entry := range cart {
		total += entry.Quantity * entry.Product.EcoPoints
	}
	return total
}

// AverageScore is the quantity-weighted mean sustainability score, rounded
// to the nearest integer. An empty cart scores 0.
func AverageScore(cart models.Cart) int {
	items := TotalItems(cart)
	if items == 0 {
		return 0
	}
	weighted := 0
	for _, entry := range cart {
		weighted += entry.Quantity * entry.Product.Score
	}
	return int(math.Round(float64(weighted) / float64(items)))
}

// RewardTier classifies an eco-point total. Boundaries are inclusive at the
// lower edge of each tier: 500 is already Silver, 1000 already Gold.
func RewardTier(points int) Tier {
	switch {
	case points >= 2*MilestoneThreshold:
		return TierGold
	case points >= MilestoneThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// ProgressToNextMilestone reports progress toward the 500-point milestone as
// a percentage, clamped at 100.
func ProgressToNextMilestone(points int) float64 {
	return math.Min(float64(points)/MilestoneThreshold*100, 100)
}

// CrossedMilestone is true iff the milestone threshold was crossed going
// from oldPoints to newPoints. It fires once per crossing, not on every
// recomputation above the threshold.
func CrossedMilestone(oldPoints, newPoints int) bool {
	return oldPoints < MilestoneThreshold && newPoints >= MilestoneThreshold
}
