package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubOffers struct {
	flights []response_models.FlightOffer
	hotels  []response_models.HotelOffer
}

func (s *stubOffers) FetchOffers(ctx context.Context, req *request_models.TripRequest) ([]response_models.FlightOffer, []response_models.HotelOffer) {
	return s.flights, s.hotels
}

type memoryArchive struct {
	saved []*db_models.ItineraryRecord
}

func (m *memoryArchive) Save(ctx context.Context, record *db_models.ItineraryRecord) error {
	m.saved = append(m.saved, record)
	return nil
}

func (m *memoryArchive) GetByID(ctx context.Context, id string) (*db_models.ItineraryRecord, error) {
	return nil, utils.ErrItineraryNotFound
}

func (m *memoryArchive) List(ctx context.Context, page, pageSize int) ([]db_models.ItineraryRecord, error) {
	return nil, nil
}

func validTripRequest() *request_models.TripRequest {
	return &request_models.TripRequest{
		Name:              "Alice",
		StartDate:         "2026-06-01",
		EndDate:           "2026-06-02",
		DepartureLocation: "Berlin",
		Destination:       "Paris",
		Accommodations:    "hotel",
		Activities:        []string{"culture", "food"},
		Budget:            "medium",
		TotalBudget:       500,
	}
}

const generatedTwoDayPlan = `[
  {"day": 1, "hourlyActivities": [{"hour": "8:00 AM", "activity": "Breakfast at Cafe de Flore", "location": "Cafe de Flore, 172 Boulevard Saint-Germain, 75006 Paris", "estimatedCost": "$25"}], "transportSuggestion": "Metro Line 4"},
  {"day": 2, "hourlyActivities": [{"hour": "9:00 AM", "activity": "Visit Eiffel Tower", "location": "Eiffel Tower, Champ de Mars, 75007 Paris", "estimatedCost": "$26"}]}
]`

func TestGenerateItinerary_MergesOffersRoundRobin(t *testing.T) {
	generator := &stubGenerator{response: generatedTwoDayPlan}
	offers := &stubOffers{
		flights: []response_models.FlightOffer{{Airline: "AF", Price: "210", Link: "#"}},
		hotels: []response_models.HotelOffer{
			{Name: "Hotel Le Marais", Price: "220", Link: "#"},
			{Name: "Generator Paris", Price: "55", Link: "#"},
		},
	}
	archive := &memoryArchive{}

	svc := NewItineraryService(generator, offers, archive)

	itinerary, err := svc.GenerateItinerary(context.Background(), validTripRequest())
	require.NoError(t, err)
	require.Len(t, itinerary, 2)

	assert.Equal(t, "Hotel Le Marais", itinerary[0].Hotel.Name)
	assert.Equal(t, "Generator Paris", itinerary[1].Hotel.Name)
	assert.Equal(t, "AF", itinerary[0].Flight.Airline)
	assert.Equal(t, "AF", itinerary[1].Flight.Airline)

	require.Len(t, archive.saved, 1)
	assert.Equal(t, "Alice", archive.saved[0].Traveler)
	assert.Equal(t, 2, archive.saved[0].Days)
	assert.Equal(t, TierMedium, archive.saved[0].BudgetTier)
}

func TestGenerateItinerary_QuotaErrorShortCircuits(t *testing.T) {
	generator := &stubGenerator{err: fmt.Errorf("%w: rate limited", utils.ErrQuotaExceeded)}
	svc := NewItineraryService(generator, &stubOffers{}, &memoryArchive{})

	itinerary, err := svc.GenerateItinerary(context.Background(), validTripRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrQuotaExceeded))
	assert.Nil(t, itinerary)
	assert.Equal(t, 1, generator.calls)
}

func TestGenerateItinerary_ParseFailureBecomesGenerationFailure(t *testing.T) {
	generator := &stubGenerator{response: "I cannot plan this trip."}
	svc := NewItineraryService(generator, &stubOffers{}, &memoryArchive{})

	itinerary, err := svc.GenerateItinerary(context.Background(), validTripRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrGenerationFailed))
	assert.Nil(t, itinerary)
}

func TestGenerateItinerary_RejectsInvalidRequest(t *testing.T) {
	generator := &stubGenerator{response: generatedTwoDayPlan}
	svc := NewItineraryService(generator, &stubOffers{}, &memoryArchive{})

	req := validTripRequest()
	req.TotalBudget = 0

	_, err := svc.GenerateItinerary(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidRequest))
	assert.Zero(t, generator.calls, "generation must not be attempted for invalid requests")
}

func TestMergeOffers_EmptyOfferListsLeaveAttachmentsNil(t *testing.T) {
	plans := []response_models.DayPlan{{Day: 1}, {Day: 2}, {Day: 3}}

	merged := MergeOffers(plans, nil, nil)
	require.Len(t, merged, 3)
	for _, day := range merged {
		assert.Nil(t, day.Hotel)
		assert.Nil(t, day.Flight)
	}
}

func TestMergeOffers_WrapsAroundOfferCount(t *testing.T) {
	plans := []response_models.DayPlan{{Day: 1}, {Day: 2}, {Day: 3}, {Day: 4}}
	flights := []response_models.FlightOffer{
		{Airline: "AA", Price: "450"},
		{Airline: "UA", Price: "520"},
		{Airline: "DL", Price: "480"},
	}

	merged := MergeOffers(plans, flights, nil)
	assert.Equal(t, "AA", merged[0].Flight.Airline)
	assert.Equal(t, "UA", merged[1].Flight.Airline)
	assert.Equal(t, "DL", merged[2].Flight.Airline)
	assert.Equal(t, "AA", merged[3].Flight.Airline)
}

func TestListItineraries_ValidatesPaging(t *testing.T) {
	svc := NewItineraryService(&stubGenerator{}, &stubOffers{}, &memoryArchive{})

	_, err := svc.ListItineraries(context.Background(), 0, 20)
	assert.True(t, errors.Is(err, utils.ErrInvalidPage))

	_, err = svc.ListItineraries(context.Background(), 1, 0)
	assert.True(t, errors.Is(err, utils.ErrInvalidPageSize))

	_, err = svc.ListItineraries(context.Background(), 1, 101)
	assert.True(t, errors.Is(err, utils.ErrInvalidPageSize))
}

func TestGetItinerary_DisabledArchive(t *testing.T) {
	svc := NewItineraryService(&stubGenerator{}, &stubOffers{}, repositories.NewDisabledItineraryRepository())

	_, err := svc.GetItinerary(context.Background(), "5bb0ff02-4b1c-4072-9c6b-0a3a4b6cf131")
	assert.True(t, errors.Is(err, utils.ErrArchiveNotConfigured))
}
