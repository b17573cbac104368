package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreview/internal/service"
)

// SectionHandler handles section catalog endpoints.
type SectionHandler struct {
	sectionService service.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sectionService service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// Create handles POST /api/v1/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var input service.CreateSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sectionService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, section)
}

// List handles GET /api/v1/sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sections)
}

// GetByID handles GET /api/v1/sections/:id
func (h *SectionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid section ID")
		return
	}

	section, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, section)
}

// Update handles PUT /api/v1/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid section ID")
		return
	}

	var input service.UpdateSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sectionService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, section)
}

// Delete handles DELETE /api/v1/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid section ID")
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondSuccess(c)
}
