package request_models

import (
	"wayfare/internal/models/response_models"
)

type CostSummaryRequest struct {
	Itinerary   []response_models.DayPlan `json:"itinerary" binding:"required"`
	TotalBudget float64                   `json:"totalBudget" binding:"required,gt=0"`
}
