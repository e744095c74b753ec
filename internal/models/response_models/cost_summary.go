package response_models

// BudgetStatus mirrors the three display bands of the cost summary.
const (
	BudgetStatusWithin  = "within"
	BudgetStatusAtLimit = "at-limit"
	BudgetStatusOver    = "over"
)

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activity      float64 `json:"activity"`
	Transport     float64 `json:"transport"`
	Shopping      float64 `json:"shopping"`
	Total         float64 `json:"total"`
}

type CostSummary struct {
	Breakdown       CostBreakdown `json:"breakdown"`
	TotalBudget     float64       `json:"totalBudget"`
	RemainingBudget float64       `json:"remainingBudget"`
	Utilization     float64       `json:"utilization"`
	Status          string        `json:"status"`
}
