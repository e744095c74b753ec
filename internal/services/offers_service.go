package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

// Fixed records substituted when a live lookup is unavailable or fails.
func fallbackFlightOffers() []response_models.FlightOffer {
	return []response_models.FlightOffer{
		{Airline: "AA", Price: "450", Link: "#"},
		{Airline: "UA", Price: "520", Link: "#"},
		{Airline: "DL", Price: "480", Link: "#"},
	}
}

func fallbackHotelOffers() []response_models.HotelOffer {
	return []response_models.HotelOffer{
		{Name: "The Plaza Hotel", Price: "450", Link: "#"},
		{Name: "Waldorf Astoria New York", Price: "380", Link: "#"},
		{Name: "The Ritz-Carlton New York", Price: "520", Link: "#"},
	}
}

type OffersServiceInterface interface {
	FetchOffers(ctx context.Context, req *request_models.TripRequest) ([]response_models.FlightOffer, []response_models.HotelOffer)
}

type OffersService struct {
	flightClient  utils.FlightClientInterface
	lodgingClient utils.LodgingClientInterface
}

func NewOffersService(
	flightClient utils.FlightClientInterface,
	lodgingClient utils.LodgingClientInterface,
) OffersServiceInterface {
	return &OffersService{
		flightClient:  flightClient,
		lodgingClient: lodgingClient,
	}
}

// FetchOffers runs the flight and lodging lookups concurrently. Neither
// failure is fatal: each side degrades independently to its fallback list and
// the error is only logged. An empty result from a healthy service is kept
// as-is.
func (s *OffersService) FetchOffers(ctx context.Context, req *request_models.TripRequest) ([]response_models.FlightOffer, []response_models.HotelOffer) {
	var (
		wg      sync.WaitGroup
		flights []response_models.FlightOffer
		hotels  []response_models.HotelOffer
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		flights = s.fetchFlights(ctx, req)
	}()

	go func() {
		defer wg.Done()
		hotels = s.fetchLodging(ctx, req)
	}()

	wg.Wait()
	return flights, hotels
}

func (s *OffersService) fetchFlights(ctx context.Context, req *request_models.TripRequest) []response_models.FlightOffer {
	if !s.flightClient.Configured() {
		log.Printf("Flight search credentials absent, using fallback offers")
		return fallbackFlightOffers()
	}

	origin := airportCode(req.DepartureLocation)
	destination := airportCode(req.Destination)

	offers, err := s.flightClient.SearchFlights(ctx, origin, destination, req.StartDate)
	if err != nil {
		log.Printf("Flight search failed, using fallback offers: %v", err)
		return fallbackFlightOffers()
	}
	return offers
}

func (s *OffersService) fetchLodging(ctx context.Context, req *request_models.TripRequest) []response_models.HotelOffer {
	if !s.lodgingClient.Configured() {
		log.Printf("Lodging search credentials absent, using fallback offers")
		return fallbackHotelOffers()
	}

	offers, err := s.lodgingClient.SearchLodging(ctx, req.Destination, req.StartDate, req.EndDate)
	if err != nil {
		log.Printf("Lodging search failed, using fallback offers: %v", err)
		return fallbackHotelOffers()
	}
	return offers
}

// airportCode derives a pseudo IATA code from a free-text location: the first
// three characters, uppercased.
func airportCode(location string) string {
	trimmed := strings.TrimSpace(location)
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return strings.ToUpper(trimmed)
}
