package offers_fx

import (
	"os"

	"go.uber.org/fx"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	ProvideFlightClient,
	ProvideLodgingClient,
	ProvideOffersService,
)

func ProvideFlightClient() utils.FlightClientInterface {
	return utils.NewAmadeusClient(
		os.Getenv("AMADEUS_CLIENT_ID"),
		os.Getenv("AMADEUS_CLIENT_SECRET"),
		os.Getenv("AMADEUS_ENV"),
	)
}

func ProvideLodgingClient() utils.LodgingClientInterface {
	return utils.NewBookingClient(os.Getenv("RAPIDAPI_KEY"))
}

func ProvideOffersService(
	flightClient utils.FlightClientInterface,
	lodgingClient utils.LodgingClientInterface,
) services.OffersServiceInterface {
	return services.NewOffersService(flightClient, lodgingClient)
}
