package request_models

import (
	"fmt"
	"strings"
	"time"
)

const maxTripDays = 30

type PersonalPreferences struct {
	TravelStyle         []string `json:"travelStyle"`
	Interests           []string `json:"interests"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Accessibility       []string `json:"accessibility"`
	Pace                string   `json:"pace"`
	GroupSize           string   `json:"groupSize"`
	SpecialRequirements string   `json:"specialRequirements"`
}

// TripRequest is the payload posted by the form collaborator. Dates are
// calendar days in "2006-01-02" form.
type TripRequest struct {
	Name              string              `json:"name" binding:"required"`
	Days              int                 `json:"days"`
	StartDate         string              `json:"startDate" binding:"required"`
	EndDate           string              `json:"endDate" binding:"required"`
	DepartureLocation string              `json:"departureLocation" binding:"required"`
	Destination       string              `json:"destination" binding:"required"`
	Accommodations    string              `json:"accommodations"`
	Activities        []string            `json:"activities"`
	Budget            string              `json:"budget"`
	TotalBudget       float64             `json:"totalBudget"`
	Preferences       PersonalPreferences `json:"personalPreferences"`
}

func (r *TripRequest) ParseDates() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate %q: %w", r.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate %q: %w", r.EndDate, err)
	}
	return start, end, nil
}

// DayCount is the inclusive span between start and end date.
func (r *TripRequest) DayCount() (int, error) {
	start, end, err := r.ParseDates()
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func (r *TripRequest) Validate() error {
	start, end, err := r.ParseDates()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("endDate must not be before startDate")
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxTripDays {
		return fmt.Errorf("trip span cannot exceed %d days", maxTripDays)
	}
	if r.Days != 0 && r.Days != days {
		return fmt.Errorf("days field (%d) does not match date span (%d)", r.Days, days)
	}

	if len(r.Activities) == 0 {
		return fmt.Errorf("at least one activity interest is required")
	}
	if r.TotalBudget <= 0 {
		return fmt.Errorf("totalBudget must be positive")
	}

	switch strings.ToLower(r.Budget) {
	case "budget", "medium", "luxury":
	default:
		return fmt.Errorf("budget must be one of budget, medium, luxury")
	}

	return nil
}
