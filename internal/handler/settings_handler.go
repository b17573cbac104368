package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docreview/internal/service"
)

// SettingsHandler handles key-value settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// List handles GET /api/v1/settings. Settings come back as a key -> value map;
// the provider credential is masked.
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	RespondOK(c, out)
}

// Upsert handles POST /api/v1/settings
func (h *SettingsHandler) Upsert(c *gin.Context) {
	var input service.UpsertSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	setting, err := h.settingsService.Upsert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, setting)
}
