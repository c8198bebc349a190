package routers

import (
	"presence-service/internal/app/delivery/http/controllers"
	"presence-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPresenceRoutes(router chi.Router, middlewares *middlewares.Middlewares, presenceController *controllers.PresenceController) {
	router.Get("/users", presenceController.GetUsers)
	router.Get("/mean_time_weekday/{user_id}", presenceController.GetMeanTimeWeekday)
	router.Get("/presence_weekday/{user_id}", presenceController.GetPresenceWeekday)
	router.Get("/presence_start_end/{user_id}", presenceController.GetPresenceStartEnd)
}

func attachPageRoutes(router chi.Router, pageController *controllers.PageController) {
	router.Get("/", pageController.Root)
	router.Get("/presence_weekday", pageController.PresenceWeekday)
	router.Get("/mean_time_weekday", pageController.MeanTimeWeekday)
	router.Get("/presence_start_end", pageController.PresenceStartEnd)
}
