package services

import "fmt"

// Category weights of the daily budget. They sum to 1.
const (
	accommodationWeight = 0.35
	foodWeight          = 0.25
	activitiesWeight    = 0.20
	transportWeight     = 0.15
	shoppingWeight      = 0.05
)

// Tier thresholds on the daily budget.
const (
	budgetTierCeiling = 150
	mediumTierCeiling = 300
)

const (
	TierBudget = "budget"
	TierMedium = "medium"
	TierLuxury = "luxury"
)

// BudgetAllocation is derived once per request and never mutated afterwards.
type BudgetAllocation struct {
	DailyTotal    float64
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
	Shopping      float64
	Tier          string
}

// AllocateBudget splits the total budget into per-category daily amounts and
// classifies the trip into a spending tier.
func AllocateBudget(totalBudget float64, days int) (BudgetAllocation, error) {
	if days < 1 {
		return BudgetAllocation{}, fmt.Errorf("day count must be at least 1, got %d", days)
	}
	if totalBudget <= 0 {
		return BudgetAllocation{}, fmt.Errorf("total budget must be positive, got %.2f", totalBudget)
	}

	daily := totalBudget / float64(days)

	return BudgetAllocation{
		DailyTotal:    daily,
		Accommodation: daily * accommodationWeight,
		Food:          daily * foodWeight,
		Activities:    daily * activitiesWeight,
		Transport:     daily * transportWeight,
		Shopping:      daily * shoppingWeight,
		Tier:          classifyTier(daily),
	}, nil
}

func classifyTier(dailyBudget float64) string {
	switch {
	case dailyBudget <= budgetTierCeiling:
		return TierBudget
	case dailyBudget <= mediumTierCeiling:
		return TierMedium
	default:
		return TierLuxury
	}
}
