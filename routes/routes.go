package routes

import (
	"net/http"

	"sanchaari/auth"
	"sanchaari/itinerary"
	"sanchaari/maps"
	"sanchaari/middleware"
	"sanchaari/ratelim"
	"sanchaari/utils"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
}

func AddItineraryRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.POST("/api/itineraries", rateLimiter.Limit(middleware.Authenticate(itinerary.CreateItinerary)))
	router.GET("/api/itineraries/:id", middleware.Authenticate(itinerary.GetItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))
	router.GET("/api/itineraries/:id/pdf", middleware.Authenticate(itinerary.PrintItinerary))
}

func AddMapRoutes(router *httprouter.Router) {
	router.GET("/api/maps/nearby", maps.GetNearby)
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", Health)
}

// Health is a simple health check handler.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
}
