package handlers

import (
	"errors"
	"net/http"

	"anndann/models"
	"anndann/services/volunteer"
	"anndann/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgAddVolunteerFailed = "Failed to add volunteer. Please try again."

// VolunteerHandler serves volunteer registration.
type VolunteerHandler struct {
	Service volunteer.VolunteerService
}

func NewVolunteerHandler(svc volunteer.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{Service: svc}
}

// volunteerView is the record as returned to clients.
type volunteerView struct {
	ID string `json:"id"`
	models.VolunteerRegistration
}

// RegisterVolunteerHandler validates and stores a volunteer registration.
func (h *VolunteerHandler) RegisterVolunteerHandler(c *gin.Context) {
	logger := getLogger(c)

	body, err := c.GetRawData()
	if err != nil {
		logger.Info("Failed to read volunteer registration body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	record, err := h.Service.RegisterVolunteerJSON(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, volunteer.ErrMalformedBody) {
			logger.Info("Invalid volunteer registration body", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "")
			return
		}
		var vErr *volunteer.ValidationError
		if errors.As(err, &vErr) {
			logger.Info("Volunteer registration rejected",
				zap.String("kind", string(vErr.Kind)), zap.Strings("fields", vErr.Fields))
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, string(vErr.Kind))
			return
		}
		logger.Error("Failed to add volunteer", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msgAddVolunteerFailed, "")
		return
	}

	logger.Info("Volunteer registered", zap.String("volunteerId", record.ID))
	c.JSON(http.StatusCreated, gin.H{
		"status":    "success",
		"volunteer": volunteerView{ID: record.ID, VolunteerRegistration: record.VolunteerRegistration},
	})
}
