package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/handler"
	"docreview/internal/review"
	"docreview/internal/service"
	"docreview/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionHandler() (*handler.SessionHandler, *mocks.MockSessionService, *mocks.MockReviewService) {
	sessionSvc := new(mocks.MockSessionService)
	reviewSvc := new(mocks.MockReviewService)
	h := handler.NewSessionHandler(sessionSvc, reviewSvc)
	return h, sessionSvc, reviewSvc
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func testContext(w *httptest.ResponseRecorder, req *http.Request, params ...gin.Param) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c
}

// --- CreateWithUploads ---

func TestSessionHandler_CreateWithUploads_Success(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	sessionID := uuid.New()
	rulesetID := uuid.New()
	sectionID := uuid.New()
	sessionSvc.On("CreateWithUploads", mock.Anything, mock.MatchedBy(func(in service.CreateSessionWithUploadsInput) bool {
		return in.RulesetID == rulesetID && in.DocumentName == "Shipment 42" && len(in.Uploads) == 1
	})).Return(&domain.ReviewSession{ID: sessionID, RulesetID: rulesetID, DocumentName: "Shipment 42", Status: domain.RunStatusPending}, nil)

	body := map[string]interface{}{
		"ruleset_id":    rulesetID,
		"document_name": "Shipment 42",
		"uploads": []map[string]interface{}{
			{"section_id": sectionID, "document_data": "ZGF0YQ==", "file_name": "invoice.pdf", "file_size": 1024},
		},
	}

	w := httptest.NewRecorder()
	h.CreateWithUploads(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sessions/create-with-uploads", body)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.ReviewSession
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.ID)
	sessionSvc.AssertExpectations(t)
}

func TestSessionHandler_CreateWithUploads_MissingUploads(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	body := map[string]interface{}{
		"ruleset_id":    uuid.New(),
		"document_name": "Shipment 42",
	}

	w := httptest.NewRecorder()
	h.CreateWithUploads(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sessions/create-with-uploads", body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sessionSvc.AssertNotCalled(t, "CreateWithUploads", mock.Anything, mock.Anything)
}

// --- GetByID ---

func TestSessionHandler_GetByID_NotFound(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	sessionID := uuid.New()
	sessionSvc.On("GetByID", mock.Anything, sessionID).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	h.GetByID(testContext(w, jsonRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "session not found", resp.Error)
}

func TestSessionHandler_GetByID_InvalidID(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	w := httptest.NewRecorder()
	h.GetByID(testContext(w, jsonRequest(http.MethodGet, "/api/v1/sessions/nope", nil),
		gin.Param{Key: "id", Value: "nope"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sessionSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// --- Process ---

func TestSessionHandler_Process_Accepted(t *testing.T) {
	h, _, reviewSvc := newSessionHandler()

	sessionID := uuid.New()
	reviewSvc.On("TriggerSession", mock.Anything, sessionID).Return(nil)

	w := httptest.NewRecorder()
	h.Process(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/process", nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp handler.SuccessBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSessionHandler_Process_AlreadyProcessing(t *testing.T) {
	h, _, reviewSvc := newSessionHandler()

	sessionID := uuid.New()
	reviewSvc.On("TriggerSession", mock.Anything, sessionID).Return(domain.ErrAlreadyProcessing)

	w := httptest.NewRecorder()
	h.Process(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/process", nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionHandler_Process_QueueFull(t *testing.T) {
	h, _, reviewSvc := newSessionHandler()

	sessionID := uuid.New()
	reviewSvc.On("TriggerSession", mock.Anything, sessionID).Return(domain.ErrQueueFull)

	w := httptest.NewRecorder()
	h.Process(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/process", nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// --- Summary ---

func TestSessionHandler_Summary_WithRevisionParam(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	sessionID := uuid.New()
	revisionID := uuid.New()
	sessionSvc.On("Summary", mock.Anything, sessionID, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == revisionID
	})).Return(&review.Summary{
		Critical: []review.Issue{{Section: "Commercial Invoice", Text: "Missing: hs_code"}},
	}, nil)

	w := httptest.NewRecorder()
	h.Summary(testContext(w,
		jsonRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/summary?revision_id="+revisionID.String(), nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp review.Summary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Critical, 1)
}

func TestSessionHandler_Summary_BadRevisionParam(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	sessionID := uuid.New()

	w := httptest.NewRecorder()
	h.Summary(testContext(w,
		jsonRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/summary?revision_id=nope", nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sessionSvc.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

// --- Export ---

func TestSessionHandler_Export_SetsWorkbookHeaders(t *testing.T) {
	h, sessionSvc, _ := newSessionHandler()

	sessionID := uuid.New()
	detail := &service.SessionDetail{
		ReviewSession: domain.ReviewSession{ID: sessionID, DocumentName: "Shipment 42", Status: domain.RunStatusCompleted},
	}
	sessionSvc.On("GetByID", mock.Anything, sessionID).Return(detail, nil)
	sessionSvc.On("Results", mock.Anything, sessionID, (*uuid.UUID)(nil)).
		Return([]domain.ReviewResult{{SectionName: "Commercial Invoice", SequenceOrder: 1}}, nil)

	w := httptest.NewRecorder()
	h.Export(testContext(w,
		jsonRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/export", nil),
		gin.Param{Key: "id", Value: sessionID.String()}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Shipment 42")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
