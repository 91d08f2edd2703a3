// File: anndann/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Volunteer endpoints
	RegisterVolunteerHandler gin.HandlerFunc

	// Draft endpoints
	GetDraftHandler   gin.HandlerFunc
	MergeDraftHandler gin.HandlerFunc
	ClearDraftHandler gin.HandlerFunc

	// Geocoding endpoints
	GeocodeSearchHandler  gin.HandlerFunc
	GeocodeReverseHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
