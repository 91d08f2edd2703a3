package routes

import (
	"time"

	"anndann/config"
	"anndann/handlers"
	"anndann/services/draft"
	"anndann/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVolunteerRoutes registers volunteer registration and draft endpoints.
func RegisterVolunteerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/volunteers")
	{
		api.POST("", hb.RegisterVolunteerHandler)

		api.GET("/draft", hb.GetDraftHandler)
		api.PATCH("/draft", hb.MergeDraftHandler)
		api.DELETE("/draft", hb.ClearDraftHandler)
	}
}

// RegisterGeocodeRoutes registers the location lookup proxy.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geocode")
	{
		api.GET("/search", hb.GeocodeSearchHandler)
		api.GET("/reverse", hb.GeocodeReverseHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// corsConfig allows the configured origins. Credentials are only allowed
// for an explicit origin list, never with the wildcard.
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", draft.SessionHeader, utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", draft.SessionHeader, utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := config.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig()))

	RegisterVolunteerRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
