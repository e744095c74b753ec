package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req *request_models.TripRequest) ([]response_models.DayPlan, error)
	GetItinerary(ctx context.Context, id string) (*response_models.ArchivedItinerary, error)
	ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ArchivedItinerary, error)
}

type ItineraryService struct {
	generator     utils.GenerationClientInterface
	offersService OffersServiceInterface
	archive       repositories.ItineraryRepository
}

func NewItineraryService(
	generator utils.GenerationClientInterface,
	offersService OffersServiceInterface,
	archive repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:     generator,
		offersService: offersService,
		archive:       archive,
	}
}

type offersResult struct {
	flights []response_models.FlightOffer
	hotels  []response_models.HotelOffer
}

// GenerateItinerary runs the full pipeline: allocate the budget, compose the
// generation instruction, call the generator once, parse its output, fetch
// auxiliary offers and merge everything. Generation-stage failures abort the
// request with a classified error; there is never a partial itinerary.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req *request_models.TripRequest) ([]response_models.DayPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}

	days, err := req.DayCount()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}

	alloc, err := AllocateBudget(req.TotalBudget, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}

	prompt := ComposeItineraryPrompt(req, days, alloc)

	// The offer fetches have no dependency on generation output, so they run
	// while the generator works. The result is buffered: it is only consumed
	// if generation succeeds.
	offersCh := make(chan offersResult, 1)
	go func() {
		flights, hotels := s.offersService.FetchOffers(ctx, req)
		offersCh <- offersResult{flights: flights, hotels: hotels}
	}()

	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plans, err := ParseDayPlans(raw)
	if err != nil {
		// Parse failures count as generation failures once the fallback
		// extraction is exhausted.
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	offers := <-offersCh
	final := MergeOffers(plans, offers.flights, offers.hotels)

	s.archiveItinerary(ctx, req, days, alloc, final)

	return final, nil
}

// MergeOffers attaches flight and lodging offers to each day plan by index
// modulo offer count. Empty offer lists leave the attachments nil; the merge
// itself never fails.
func MergeOffers(
	plans []response_models.DayPlan,
	flights []response_models.FlightOffer,
	hotels []response_models.HotelOffer,
) []response_models.DayPlan {
	merged := make([]response_models.DayPlan, len(plans))

	for i, plan := range plans {
		if len(hotels) > 0 {
			hotel := hotels[i%len(hotels)]
			plan.Hotel = &hotel
		}
		if len(flights) > 0 {
			flight := flights[i%len(flights)]
			plan.Flight = &flight
		}
		merged[i] = plan
	}

	return merged
}

// archiveItinerary persists the result best-effort. A failed insert is logged
// and never fails the request.
func (s *ItineraryService) archiveItinerary(
	ctx context.Context,
	req *request_models.TripRequest,
	days int,
	alloc BudgetAllocation,
	itinerary []response_models.DayPlan,
) {
	plan, err := json.Marshal(itinerary)
	if err != nil {
		log.Printf("Failed to marshal itinerary for archive: %v", err)
		return
	}

	record := &db_models.ItineraryRecord{
		Traveler:    req.Name,
		Origin:      req.DepartureLocation,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
		TotalBudget: req.TotalBudget,
		BudgetTier:  alloc.Tier,
		Plan:        plan,
	}

	if err := s.archive.Save(ctx, record); err != nil {
		log.Printf("Failed to archive itinerary: %v", err)
	}
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.ArchivedItinerary, error) {
	record, err := s.archive.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := toArchivedItinerary(record)

	var plans []response_models.DayPlan
	if err := json.Unmarshal(record.Plan, &plans); err != nil {
		log.Printf("Archived plan %s is unreadable: %v", id, err)
	} else {
		result.Itinerary = plans
	}

	return &result, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, page, pageSize int) ([]response_models.ArchivedItinerary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	records, err := s.archive.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	headers := make([]response_models.ArchivedItinerary, 0, len(records))
	for i := range records {
		headers = append(headers, toArchivedItinerary(&records[i]))
	}
	return headers, nil
}

func toArchivedItinerary(record *db_models.ItineraryRecord) response_models.ArchivedItinerary {
	return response_models.ArchivedItinerary{
		ID:          record.ID.String(),
		Traveler:    record.Traveler,
		Origin:      record.Origin,
		Destination: record.Destination,
		StartDate:   record.StartDate,
		EndDate:     record.EndDate,
		Days:        record.Days,
		TotalBudget: record.TotalBudget,
		BudgetTier:  record.BudgetTier,
		CreatedAt:   record.CreatedAt,
	}
}
