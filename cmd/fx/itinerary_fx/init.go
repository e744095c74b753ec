package itinerary_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryService,
	ProvideItineraryController,
)

func ProvideItineraryService(
	generator utils.GenerationClientInterface,
	offersService services.OffersServiceInterface,
	archive repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, offersService, archive)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
