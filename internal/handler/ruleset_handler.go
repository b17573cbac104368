package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreview/internal/service"
)

// RulesetHandler handles ruleset builder endpoints.
type RulesetHandler struct {
	rulesetService service.RulesetService
}

// NewRulesetHandler creates a new RulesetHandler.
func NewRulesetHandler(rulesetService service.RulesetService) *RulesetHandler {
	return &RulesetHandler{rulesetService: rulesetService}
}

// Create handles POST /api/v1/rulesets
func (h *RulesetHandler) Create(c *gin.Context) {
	var input service.CreateRulesetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ruleset, err := h.rulesetService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, ruleset)
}

// List handles GET /api/v1/rulesets
func (h *RulesetHandler) List(c *gin.Context) {
	rulesets, err := h.rulesetService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rulesets)
}

// GetByID handles GET /api/v1/rulesets/:id
func (h *RulesetHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ruleset ID")
		return
	}

	ruleset, err := h.rulesetService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ruleset)
}

// Update handles PUT /api/v1/rulesets/:id
func (h *RulesetHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ruleset ID")
		return
	}

	var input service.UpdateRulesetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ruleset, err := h.rulesetService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ruleset)
}

// Delete handles DELETE /api/v1/rulesets/:id
func (h *RulesetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ruleset ID")
		return
	}

	if err := h.rulesetService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondSuccess(c)
}
