package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItineraryHandler runs the generation pipeline. On success the
// response body is the bare DayPlan array the form collaborator expects; on
// failure a single {"error": ...} object with 429/503/500.
func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

func (ic *ItineraryController) CostSummaryHandler(c *gin.Context) {
	var req request_models.CostSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary := services.ReconcileCosts(req.Itinerary, req.TotalBudget)
	utils.RespondSuccess(c, summary, "Cost summary computed")
}

func (ic *ItineraryController) GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary id is required")
		return
	}

	itinerary, err := ic.itineraryService.GetItinerary(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary retrieved")
}

func (ic *ItineraryController) ListItinerariesHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Page must be a number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Page size must be a number")
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries retrieved")
}
