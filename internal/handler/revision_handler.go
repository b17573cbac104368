package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreview/internal/service"
)

// RevisionHandler handles revision timeline endpoints.
type RevisionHandler struct {
	revisionService service.RevisionService
	reviewService   service.ReviewService
}

// NewRevisionHandler creates a new RevisionHandler.
func NewRevisionHandler(revisionService service.RevisionService, reviewService service.ReviewService) *RevisionHandler {
	return &RevisionHandler{revisionService: revisionService, reviewService: reviewService}
}

// Create handles POST /api/v1/sessions/:id/revisions
func (h *RevisionHandler) Create(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input service.CreateRevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	revision, err := h.revisionService.Create(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, revision)
}

// List handles GET /api/v1/sessions/:id/revisions
func (h *RevisionHandler) List(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	revisions, err := h.revisionService.ListBySession(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, revisions)
}

// GetByID handles GET /api/v1/sessions/:id/revisions/:rid
func (h *RevisionHandler) GetByID(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	rid, ok := revisionID(c)
	if !ok {
		return
	}

	revision, err := h.revisionService.GetByID(c.Request.Context(), id, rid)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, revision)
}

// Process handles POST /api/v1/sessions/:id/revisions/:rid/process
func (h *RevisionHandler) Process(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	rid, ok := revisionID(c)
	if !ok {
		return
	}

	if err := h.reviewService.TriggerRevision(c.Request.Context(), id, rid); err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c)
}

func revisionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("rid"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid revision ID")
		return uuid.Nil, false
	}
	return id, true
}
