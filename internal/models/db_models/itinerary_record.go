package db_models

// ItineraryRecord archives one generated itinerary. Plan holds the marshaled
// DayPlan array exactly as it was returned to the caller.
type ItineraryRecord struct {
	BaseModel
	Traveler    string
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	Days        int
	TotalBudget float64
	BudgetTier  string
	Plan        []byte `gorm:"type:jsonb"`
}
