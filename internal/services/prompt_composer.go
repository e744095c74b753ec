package services

import (
	"fmt"
	"strings"
	"time"

	"wayfare/internal/models/request_models"
)

var accommodationLabels = map[string]string{
	"hotel":             "Standard hotels",
	"hostel":            "Budget hostels",
	"apartment":         "Self-catering apartments",
	"resort":            "Full-service resorts",
	"budget-hotel":      "Budget hotels",
	"guesthouse":        "Guesthouses",
	"bed-and-breakfast": "Bed & Breakfasts",
	"luxury-hotel":      "Luxury hotels",
	"boutique-hotel":    "Boutique hotels",
	"villa":             "Private villas",
}

// seasonFor buckets a calendar month into the season wording used in the
// generation instruction.
func seasonFor(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return "Spring"
	case m >= time.June && m <= time.August:
		return "Summer"
	case m >= time.September && m <= time.November:
		return "Autumn/Fall"
	default:
		return "Winter"
	}
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ComposeItineraryPrompt builds the full generation instruction from the trip
// request and its derived budget allocation. Pure string construction; the
// instruction is the only lever the pipeline has over the structure and
// specificity of the generated schedule, so every constraint is spelled out
// and the specific-name requirement is repeated. Generators are known to
// default to generic placeholders otherwise.
func ComposeItineraryPrompt(req *request_models.TripRequest, days int, alloc BudgetAllocation) string {
	start, _, _ := req.ParseDates()
	season := seasonFor(start.Month())
	monthName := start.Month().String()

	tier := strings.ToLower(req.Budget)

	accommodationLabel, ok := accommodationLabels[req.Accommodations]
	if !ok {
		accommodationLabel = "Boutique accommodations"
	}

	var tierLabel string
	switch tier {
	case TierBudget:
		tierLabel = "Budget-friendly options"
	case TierMedium:
		tierLabel = "Mid-range experiences"
	default:
		tierLabel = "Premium/luxury experiences"
	}

	var mealRange, activityRange, shoppingGuideline string
	switch tier {
	case TierBudget:
		mealRange = fmt.Sprintf("$%.0f-%.0f for meals", alloc.Food*0.4, alloc.Food*0.8)
		activityRange = fmt.Sprintf("$%.0f-%.0f for attractions", alloc.Activities*0.3, alloc.Activities*0.7)
		shoppingGuideline = "Local markets, budget stores, thrift shops"
	case TierMedium:
		mealRange = fmt.Sprintf("$%.0f-%.0f for meals", alloc.Food*0.6, alloc.Food)
		activityRange = fmt.Sprintf("$%.0f-%.0f for attractions", alloc.Activities*0.5, alloc.Activities)
		shoppingGuideline = "Mid-range boutiques, department stores, local markets"
	default:
		mealRange = fmt.Sprintf("$%.0f+ for fine dining", alloc.Food)
		activityRange = fmt.Sprintf("$%.0f+ for premium experiences", alloc.Activities)
		shoppingGuideline = "Luxury boutiques, designer stores, exclusive shopping districts"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s traveling from %s to %s, preferring %s accommodations, interested in %s, budget %s.\n\n",
		days, req.Name, req.DepartureLocation, req.Destination,
		req.Accommodations, strings.Join(req.Activities, ", "), req.Budget)

	fmt.Fprintf(&b, "TRAVEL DATES: %s to %s (%s - %s)\n\n", req.StartDate, req.EndDate, season, monthName)

	b.WriteString("BUDGET CONSIDERATIONS - CRITICAL:\n")
	fmt.Fprintf(&b, "- Total Trip Budget: $%.0f for %d days\n", req.TotalBudget, days)
	fmt.Fprintf(&b, "- Daily Budget: $%.0f per day\n", alloc.DailyTotal)
	fmt.Fprintf(&b, "- Budget Category: %s (%s)\n\n", req.Budget, tierLabel)

	fmt.Fprintf(&b, "DAILY BUDGET BREAKDOWN (based on $%.0f/day):\n", alloc.DailyTotal)
	fmt.Fprintf(&b, "- Accommodation: $%.0f/day (35%% of daily budget)\n", alloc.Accommodation)
	fmt.Fprintf(&b, "- Food: $%.0f/day (25%% of daily budget)\n", alloc.Food)
	fmt.Fprintf(&b, "- Activities: $%.0f/day (20%% of daily budget)\n", alloc.Activities)
	fmt.Fprintf(&b, "- Transport: $%.0f/day (15%% of daily budget)\n", alloc.Transport)
	fmt.Fprintf(&b, "- Shopping/Misc: $%.0f/day (5%% of daily budget)\n\n", alloc.Shopping)

	fmt.Fprintf(&b, "COST GUIDELINES (based on daily budget of $%.0f):\n", alloc.DailyTotal)
	fmt.Fprintf(&b, "- Restaurant costs: %s\n", mealRange)
	fmt.Fprintf(&b, "- Activity costs: %s\n", activityRange)
	fmt.Fprintf(&b, "- Shopping: %s\n\n", shoppingGuideline)

	b.WriteString("USER PREFERENCES - MUST MATCH:\n")
	fmt.Fprintf(&b, "- Accommodation: %s (%s)\n", req.Accommodations, accommodationLabel)
	fmt.Fprintf(&b, "- Activities: %s - focus on these specific interests\n\n", strings.Join(req.Activities, ", "))

	p := req.Preferences
	b.WriteString("PERSONAL PREFERENCES - MUST INCORPORATE:\n")
	fmt.Fprintf(&b, "- Travel Style: %s - tailor activities to match this style\n", joinOr(p.TravelStyle, "Not specified"))
	fmt.Fprintf(&b, "- Interests: %s - prioritize these specific interests\n", joinOr(p.Interests, "Not specified"))
	fmt.Fprintf(&b, "- Dietary Restrictions: %s - ensure all food recommendations accommodate these\n", joinOr(p.DietaryRestrictions, "No restrictions"))
	fmt.Fprintf(&b, "- Accessibility Requirements: %s - ensure all locations are accessible\n", joinOr(p.Accessibility, "No special requirements"))
	fmt.Fprintf(&b, "- Travel Pace: %s - adjust activity density and timing accordingly\n", valueOr(p.Pace, "Not specified"))
	fmt.Fprintf(&b, "- Group Size: %s - consider group dynamics and needs\n", valueOr(p.GroupSize, "Not specified"))
	fmt.Fprintf(&b, "- Special Requirements: %s - incorporate any specific needs or requests\n\n", valueOr(p.SpecialRequirements, "None"))

	b.WriteString(`PERSONALIZATION GUIDELINES:
- If user prefers 'Adventure' style: Include outdoor activities, adrenaline experiences, exploration
- If user prefers 'Relaxation' style: Include spa activities, peaceful locations, leisurely pace
- If user prefers 'Cultural' style: Focus on museums, historical sites, local traditions, art
- If user prefers 'Luxury' style: Include premium experiences, exclusive access, high-end venues
- If user prefers 'Budget-friendly' style: Focus on free activities, affordable options, local deals
- If user prefers 'Family-friendly' style: Include child-appropriate activities, family restaurants, safe locations
- If user prefers 'Solo travel' style: Include social activities, safe solo-friendly locations, group tours
- If user prefers 'Romantic' style: Include intimate settings, romantic restaurants, couple activities
- If user has dietary restrictions: Suggest restaurants that specifically accommodate these needs
- If user has accessibility requirements: Ensure all suggested locations have proper accessibility features
- If user prefers 'relaxed' pace: Space out activities with breaks, include rest periods
- If user prefers 'intense' pace: Pack activities closely, minimize downtime, maximize experiences

`)

	b.WriteString(`CRITICAL REQUIREMENT - SPECIFIC NAMES ONLY (MANDATORY):
NEVER use generic terms like "local restaurant", "famous landmark", "shopping district", "art museum", "popular area", "tourist spot"
NEVER use "local cafe", "fine restaurant", "luxury hotel", "main attraction", "cultural site", "famous place", "well-known", "popular destination", "must-see", "local eatery", "traditional restaurant", "authentic place", "hidden gem"
ALWAYS provide REAL, SPECIFIC names for every location and activity
Include FULL ADDRESSES for all locations
You MUST use actual business names, not descriptions
This is a STRICT requirement - generic responses will be rejected

REQUIRED FORMAT FOR EACH LOCATION: "Establishment Name, Full Street Address, City, Postal Code"

EXAMPLES OF WHAT TO PROVIDE (NOT GENERIC):
CORRECT: "Breakfast at Cafe de Flore, 172 Boulevard Saint-Germain, 75006 Paris, France"
WRONG: "Breakfast at local cafe"
CORRECT: "Visit Eiffel Tower, Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France"
WRONG: "Visit famous landmark"
CORRECT: "Lunch at Le Petit Bistrot, 12 Rue de la Paix, 75002 Paris, France"
WRONG: "Lunch at local restaurant"
CORRECT: "Shopping at Galeries Lafayette, 40 Boulevard Haussmann, 75009 Paris, France"
WRONG: "Shopping at shopping district"

`)

	fmt.Fprintf(&b, `SEASONAL CONSIDERATIONS (only when relevant):
- If there are specific festivals, events, or seasonal activities happening during %s to %s, include them
- Consider weather conditions for %s when suggesting indoor/outdoor activities
- Only mention seasonal events if they're actually happening during the travel dates

`, req.StartDate, req.EndDate, season)

	fmt.Fprintf(&b, "Each day should have hourly activities from 8 AM to 10 PM with specific locations and estimated costs that match the %s budget.\n\n", req.Budget)
	fmt.Fprintf(&b, "Also suggest the best transportation methods for getting around in %s (metro, bus, walking, taxi, etc.).\n\n", req.Destination)

	b.WriteString(`FINAL REMINDER: Every single activity must have a REAL, SPECIFIC name and FULL address. No generic terms allowed. If you use ANY generic placeholder, the response will be rejected and unusable.

Return ONLY a valid JSON array where each item has: day, hourlyActivities (array of objects with hour, activity, location, estimatedCost), transportSuggestion.
Example format:
[
  {
    "day": 1,
    "hourlyActivities": [
      {"hour": "8:00 AM", "activity": "Breakfast at Cafe de Flore", "location": "Cafe de Flore, 172 Boulevard Saint-Germain, 75006 Paris, France", "estimatedCost": "$25"},
      {"hour": "9:00 AM", "activity": "Visit Eiffel Tower", "location": "Eiffel Tower, Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France", "estimatedCost": "$26"},
      {"hour": "12:00 PM", "activity": "Lunch at Le Petit Bistrot", "location": "Le Petit Bistrot, 12 Rue de la Paix, 75002 Paris, France", "estimatedCost": "$35"},
      {"hour": "2:00 PM", "activity": "Explore Louvre Museum", "location": "Louvre Museum, Rue de Rivoli, 75001 Paris, France", "estimatedCost": "$17"},
      {"hour": "7:00 PM", "activity": "Dinner at Le Jules Verne", "location": "Le Jules Verne, Eiffel Tower, 2nd Floor, Champ de Mars, 75007 Paris, France", "estimatedCost": "$180"}
    ],
    "transportSuggestion": "Take Metro Line 6 to Bir-Hakeim station for Eiffel Tower, then walk to Louvre. Use Metro Line 1 for shopping and dinner."
  }
]`)

	return b.String()
}
