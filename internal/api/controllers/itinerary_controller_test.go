package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

type stubItineraryService struct {
	itinerary []response_models.DayPlan
	err       error
}

func (s *stubItineraryService) GenerateItinerary(ctx context.Context, req *request_models.TripRequest) ([]response_models.DayPlan, error) {
	return s.itinerary, s.err
}

func (s *stubItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.ArchivedItinerary, error) {
	return nil, utils.ErrItineraryNotFound
}

func (s *stubItineraryService) ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ArchivedItinerary, error) {
	return nil, nil
}

func newTestRouter(svc *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewItineraryController(svc)

	r := gin.New()
	r.POST("/api/itineraries", controller.GenerateItineraryHandler)
	r.GET("/api/itineraries/:id", controller.GetItineraryHandler)
	return r
}

const tripRequestBody = `{
  "name": "Alice",
  "startDate": "2026-06-01",
  "endDate": "2026-06-05",
  "departureLocation": "Berlin",
  "destination": "Paris",
  "accommodations": "hotel",
  "activities": ["culture"],
  "budget": "medium",
  "totalBudget": 1500
}`

func postItinerary(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateItineraryHandler_ReturnsBareArray(t *testing.T) {
	svc := &stubItineraryService{
		itinerary: []response_models.DayPlan{{Day: 1}, {Day: 2}},
	}

	w := postItinerary(t, newTestRouter(svc), tripRequestBody)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []response_models.DayPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	assert.Len(t, plans, 2)
}

func TestGenerateItineraryHandler_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"quota exceeded", fmt.Errorf("%w: daily limit", utils.ErrQuotaExceeded), http.StatusTooManyRequests},
		{"service unavailable", fmt.Errorf("%w: overloaded", utils.ErrServiceUnavailable), http.StatusServiceUnavailable},
		{"generation failed", fmt.Errorf("%w: no content", utils.ErrGenerationFailed), http.StatusInternalServerError},
		{"invalid request", fmt.Errorf("%w: bad dates", utils.ErrInvalidRequest), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postItinerary(t, newTestRouter(&stubItineraryService{err: tc.err}), tripRequestBody)
			require.Equal(t, tc.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			// A failed request carries a single error object, never a partial
			// itinerary.
			assert.Len(t, body, 1)
		})
	}
}

func TestGenerateItineraryHandler_MalformedBody(t *testing.T) {
	w := postItinerary(t, newTestRouter(&stubItineraryService{}), "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItineraryHandler_NotFound(t *testing.T) {
	r := newTestRouter(&stubItineraryService{})
	req := httptest.NewRequest(http.MethodGet, "/api/itineraries/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
