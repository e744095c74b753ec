package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/response_models"
)

func TestReconcileCosts_ClassifiesDinnerAsFood(t *testing.T) {
	itinerary := []response_models.DayPlan{
		{
			Day: 1,
			HourlyActivities: []response_models.HourlyActivity{
				{
					Activity:      "Dinner at Le Jules Verne",
					Location:      "Le Jules Verne, Eiffel Tower, 2nd Floor, Champ de Mars, 75007 Paris, France",
					EstimatedCost: "€180",
				},
			},
		},
	}

	summary := ReconcileCosts(itinerary, 1000)
	assert.InDelta(t, 180.0, summary.Breakdown.Food, 1e-9)
	assert.InDelta(t, 180.0, summary.Breakdown.Total, 1e-9)
}

func TestReconcileCosts_MatchingOrderIsFoodFirst(t *testing.T) {
	itinerary := []response_models.DayPlan{
		{
			Day: 1,
			HourlyActivities: []response_models.HourlyActivity{
				// "walk" (sightseeing) appears before "market" (shopping), but
				// sightseeing terms are checked first.
				{Activity: "Walk through the flower market", Location: "Marché aux Fleurs, Place Louis Lépine, 75004 Paris", EstimatedCost: "$10"},
				// "lunch" wins over "market" because food terms come first.
				{Activity: "Lunch at the market hall", Location: "Marché des Enfants Rouges, 39 Rue de Bretagne, 75003 Paris", EstimatedCost: "$20"},
				{Activity: "Souvenir shopping", Location: "Galeries Lafayette, 40 Boulevard Haussmann, 75009 Paris", EstimatedCost: "$50"},
				{Activity: "Metro day pass", Location: "Châtelet Station, 75001 Paris", EstimatedCost: "$15"},
				{Activity: "Evening jazz concert", Location: "Duc des Lombards, 42 Rue des Lombards, 75001 Paris", EstimatedCost: "$30"},
			},
		},
	}

	summary := ReconcileCosts(itinerary, 1000)
	assert.InDelta(t, 20.0, summary.Breakdown.Food, 1e-9)
	assert.InDelta(t, 40.0, summary.Breakdown.Activity, 1e-9) // walk + unmatched concert
	assert.InDelta(t, 50.0, summary.Breakdown.Shopping, 1e-9)
	assert.InDelta(t, 15.0, summary.Breakdown.Transport, 1e-9)
}

func TestReconcileCosts_HotelAndFlightAttachments(t *testing.T) {
	hotel := response_models.HotelOffer{Name: "The Plaza Hotel", Price: "450"}
	flight := response_models.FlightOffer{Airline: "AA", Price: "450"}

	itinerary := []response_models.DayPlan{
		{Day: 1, Hotel: &hotel, Flight: &flight},
		{Day: 2, Hotel: &hotel, Flight: &flight},
	}

	summary := ReconcileCosts(itinerary, 5000)
	// Hotel counts every day; the flight only on day 1.
	assert.InDelta(t, 900.0, summary.Breakdown.Accommodation, 1e-9)
	assert.InDelta(t, 450.0, summary.Breakdown.Transport, 1e-9)
	assert.InDelta(t, 1350.0, summary.Breakdown.Total, 1e-9)
}

func TestReconcileCosts_UnparsableCostContributesZero(t *testing.T) {
	itinerary := []response_models.DayPlan{
		{
			Day: 1,
			HourlyActivities: []response_models.HourlyActivity{
				{Activity: "Evening stroll in Montmartre", Location: "Montmartre, 75018 Paris", EstimatedCost: "Free"},
			},
		},
	}

	summary := ReconcileCosts(itinerary, 1000)
	assert.Zero(t, summary.Breakdown.Total)
	assert.Zero(t, summary.Utilization)
	assert.Equal(t, response_models.BudgetStatusWithin, summary.Status)
	assert.InDelta(t, 1000.0, summary.RemainingBudget, 1e-9)
}

func TestReconcileCosts_StatusBands(t *testing.T) {
	plan := func(cost string) []response_models.DayPlan {
		return []response_models.DayPlan{
			{Day: 1, HourlyActivities: []response_models.HourlyActivity{
				{Activity: "Guided tour", Location: "Louvre Museum, Rue de Rivoli, 75001 Paris", EstimatedCost: cost},
			}},
		}
	}

	within := ReconcileCosts(plan("$80"), 100)
	require.Equal(t, response_models.BudgetStatusWithin, within.Status)

	atLimit := ReconcileCosts(plan("$95"), 100)
	require.Equal(t, response_models.BudgetStatusAtLimit, atLimit.Status)

	over := ReconcileCosts(plan("$120"), 100)
	require.Equal(t, response_models.BudgetStatusOver, over.Status)
	assert.InDelta(t, -20.0, over.RemainingBudget, 1e-9)
}
