package response_models

// ArchivedItinerary is the stored result of one generation request.
type ArchivedItinerary struct {
	ID          string    `json:"id"`
	Traveler    string    `json:"traveler"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Days        int       `json:"days"`
	TotalBudget float64   `json:"totalBudget"`
	BudgetTier  string    `json:"budgetTier"`
	CreatedAt   int64     `json:"createdAt"`
	Itinerary   []DayPlan `json:"itinerary,omitempty"`
}
