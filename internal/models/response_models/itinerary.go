package response_models

// HourlyActivity is one row of a day's schedule. Location is expected to be a
// concretely named establishment with a full postal address; that contract is
// enforced by the generation instruction, not re-validated here.
type HourlyActivity struct {
	Hour          string `json:"hour"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	EstimatedCost string `json:"estimatedCost"`
}

type HotelOffer struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Link  string `json:"link"`
}

type FlightOffer struct {
	Airline string `json:"airline"`
	Price   string `json:"price"`
	Link    string `json:"link"`
}

type DayPlan struct {
	Day                 int              `json:"day"`
	HourlyActivities    []HourlyActivity `json:"hourlyActivities"`
	TransportSuggestion string           `json:"transportSuggestion,omitempty"`
	Hotel               *HotelOffer      `json:"hotel"`
	Flight              *FlightOffer     `json:"flight"`
}
