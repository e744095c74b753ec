package services

import (
	"strconv"
	"strings"

	"wayfare/internal/models/response_models"
)

// Keyword sets for cost classification. Matching order is significant and
// must stay food, then sightseeing, then shopping, then transport: an
// activity like "walk to the market" lands in the first category whose terms
// match.
var (
	foodActivityTerms = []string{"breakfast", "lunch", "dinner", "restaurant", "cafe", "food"}
	foodLocationTerms = []string{"restaurant", "cafe"}
	sightseeingTerms  = []string{"museum", "visit", "explore", "tour", "park", "beach", "hike", "walk"}
	shoppingTerms     = []string{"shopping", "market", "store", "mall"}
	transportTerms    = []string{"metro", "bus", "taxi", "train", "transport"}
)

// ReconcileCosts itemizes the final itinerary against the requested budget.
// The reconciliation is advisory: malformed cost strings contribute zero and
// never abort the computation.
func ReconcileCosts(itinerary []response_models.DayPlan, totalBudget float64) response_models.CostSummary {
	var breakdown response_models.CostBreakdown

	for _, day := range itinerary {
		if day.Hotel != nil {
			price := parseCostAmount(day.Hotel.Price)
			breakdown.Accommodation += price
			breakdown.Total += price
		}

		// The flight is a one-off cost; it is attached to every day by the
		// round-robin merge, so only day 1 counts it.
		if day.Day == 1 && day.Flight != nil {
			price := parseCostAmount(day.Flight.Price)
			breakdown.Transport += price
			breakdown.Total += price
		}

		for _, activity := range day.HourlyActivities {
			cost := parseCostAmount(activity.EstimatedCost)

			switch classifyActivity(activity.Activity, activity.Location) {
			case "food":
				breakdown.Food += cost
			case "shopping":
				breakdown.Shopping += cost
			case "transport":
				breakdown.Transport += cost
			default:
				breakdown.Activity += cost
			}

			breakdown.Total += cost
		}
	}

	summary := response_models.CostSummary{
		Breakdown:       breakdown,
		TotalBudget:     totalBudget,
		RemainingBudget: totalBudget - breakdown.Total,
	}

	if breakdown.Total > 0 && totalBudget > 0 {
		summary.Utilization = breakdown.Total / totalBudget * 100
	}

	switch {
	case summary.Utilization <= 80:
		summary.Status = response_models.BudgetStatusWithin
	case summary.Utilization <= 100:
		summary.Status = response_models.BudgetStatusAtLimit
	default:
		summary.Status = response_models.BudgetStatusOver
	}

	return summary
}

func classifyActivity(activity, location string) string {
	activityLower := strings.ToLower(activity)
	locationLower := strings.ToLower(location)

	if containsAny(activityLower, foodActivityTerms) || containsAny(locationLower, foodLocationTerms) {
		return "food"
	}
	if containsAny(activityLower, sightseeingTerms) {
		return "activity"
	}
	if containsAny(activityLower, shoppingTerms) {
		return "shopping"
	}
	if containsAny(activityLower, transportTerms) {
		return "transport"
	}
	return "activity"
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// parseCostAmount strips everything but digits and the decimal point before
// parsing. "Free", "€180", "$25.50" all parse without error; anything left
// unparsable contributes zero.
func parseCostAmount(s string) float64 {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
