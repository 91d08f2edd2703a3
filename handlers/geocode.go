package handlers

import (
	"net/http"
	"strconv"

	"anndann/models"
	"anndann/services/geocoding"
	"anndann/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler proxies location lookups to the configured geocoder.
type GeocodeHandler struct {
	Geocoder geocoding.Geocoder
}

func NewGeocodeHandler(g geocoding.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{Geocoder: g}
}

// SearchHandler returns up to five places matching q. Queries of two
// characters or fewer return no results without a lookup.
func (h *GeocodeHandler) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if !geocoding.ShouldSearch(query) {
		c.JSON(http.StatusOK, gin.H{"results": []models.Place{}})
		return
	}

	places, err := h.Geocoder.Search(c.Request.Context(), query)
	if err != nil {
		getLogger(c).Warn("Geocoding search failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Geocoding request failed", "")
		return
	}
	if places == nil {
		places = []models.Place{}
	}
	c.JSON(http.StatusOK, gin.H{"results": places})
}

// ReverseHandler resolves lat/lon to an address. Lookup failures fall back
// to a placeholder address rather than an error.
func (h *GeocodeHandler) ReverseHandler(c *gin.Context) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameters: lat, lon", "")
		return
	}
	lat, lon, err := geocoding.ParseLatLon(latStr, lonStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates: "+err.Error(), "")
		return
	}

	sel := geocoding.ResolvePosition(c.Request.Context(), h.Geocoder, lat, lon, getLogger(c))
	c.JSON(http.StatusOK, gin.H{"result": models.Place{
		DisplayName: sel.Address,
		Lat:         strconv.FormatFloat(sel.Latitude, 'f', -1, 64),
		Lon:         strconv.FormatFloat(sel.Longitude, 'f', -1, 64),
	}})
}
