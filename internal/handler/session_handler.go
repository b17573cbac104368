package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreview/internal/export"
	"docreview/internal/service"
)

// SessionHandler handles review session and pipeline endpoints.
type SessionHandler struct {
	sessionService service.SessionService
	reviewService  service.ReviewService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService, reviewService service.ReviewService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, reviewService: reviewService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var input service.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// CreateWithUploads handles POST /api/v1/sessions/create-with-uploads
func (h *SessionHandler) CreateWithUploads(c *gin.Context) {
	var input service.CreateSessionWithUploadsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.CreateWithUploads(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sessions)
}

// GetByID handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetByID(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondSuccess(c)
}

// Process handles POST /api/v1/sessions/:id/process and
// POST /api/v1/sessions/:id/process-with-progress. Both submit the same guarded
// run; progress is observed by polling the session status.
func (h *SessionHandler) Process(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.reviewService.TriggerSession(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c)
}

// Reprocess handles POST /api/v1/sessions/:id/reprocess
func (h *SessionHandler) Reprocess(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.reviewService.Reprocess(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c)
}

// Summary handles GET /api/v1/sessions/:id/summary
func (h *SessionHandler) Summary(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	revisionID, ok := revisionIDQuery(c)
	if !ok {
		return
	}

	summary, err := h.sessionService.Summary(c.Request.Context(), id, revisionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Export handles GET /api/v1/sessions/:id/export
func (h *SessionHandler) Export(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	revisionID, ok := revisionIDQuery(c)
	if !ok {
		return
	}

	detail, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	results, err := h.sessionService.Results(c.Request.Context(), id, revisionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("review-%s.xlsx", detail.DocumentName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteWorkbook(c.Writer, &detail.ReviewSession, results); err != nil {
		HandleError(c, err)
		return
	}
}

// sessionID parses the :id path param. Returns false with the error response
// already written.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// revisionIDQuery parses the optional ?revision_id= query param.
func revisionIDQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("revision_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid revision ID")
		return nil, false
	}
	return &id, true
}
