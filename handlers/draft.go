package handlers

import (
	"net/http"

	"anndann/models"
	"anndann/services/draft"
	"anndann/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftHandler exposes the session-scoped registration draft.
type DraftHandler struct {
	Store draft.Store
}

func NewDraftHandler(store draft.Store) *DraftHandler {
	return &DraftHandler{Store: store}
}

// sessionID reads the session from the header, falling back to the cookie.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader(draft.SessionHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(utils.SessionCookie); err == nil {
		return id
	}
	return ""
}

func bindSession(c *gin.Context, id string) {
	c.Header(draft.SessionHeader, id)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, id, utils.SessionCookieMaxAge, "/", "", false, true)
}

// GetDraftHandler returns the session draft. A request without a session
// gets an empty draft.
func (h *DraftHandler) GetDraftHandler(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusOK, gin.H{"draft": models.VolunteerDraft{}})
		return
	}

	d, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("Failed to read draft", zap.String("session", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load draft", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// MergeDraftHandler merges the fields present in the body into the session
// draft, opening a new session when the request has none.
func (h *DraftHandler) MergeDraftHandler(c *gin.Context) {
	logger := getLogger(c)

	var partial models.VolunteerDraft
	if err := c.ShouldBindJSON(&partial); err != nil {
		logger.Info("Invalid draft body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	id := sessionID(c)
	if id == "" {
		id = uuid.NewString()
	}

	d, err := h.Store.Merge(c.Request.Context(), id, partial)
	if err != nil {
		logger.Error("Failed to merge draft", zap.String("session", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save draft", "")
		return
	}
	bindSession(c, id)
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// ClearDraftHandler removes the session draft. Clearing a missing draft
// succeeds.
func (h *DraftHandler) ClearDraftHandler(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		c.Status(http.StatusNoContent)
		return
	}
	if err := h.Store.Clear(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to clear draft", zap.String("session", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear draft", "")
		return
	}
	c.Status(http.StatusNoContent)
}
