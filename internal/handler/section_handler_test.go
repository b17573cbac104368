package handler_test

import (
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
	"docreview/internal/service"
	"docreview/mocks"
)

func newSectionHandler() (*handler.SectionHandler, *mocks.MockSectionService) {
	mockSvc := new(mocks.MockSectionService)
	h := handler.NewSectionHandler(mockSvc)
	return h, mockSvc
}

func TestSectionHandler_Create_Success(t *testing.T) {
	h, mockSvc := newSectionHandler()

	expected := &domain.Section{
		ID:          uuid.New(),
		Name:        "Commercial Invoice",
		Description: "Invoice issued to the consignee",
	}
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateSectionInput) bool {
		return in.Name == "Commercial Invoice"
	})).Return(expected, nil)

	body := map[string]string{
		"name":        "Commercial Invoice",
		"description": "Invoice issued to the consignee",
	}

	w := httptest.NewRecorder()
	h.Create(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sections", body)))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Section
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	mockSvc.AssertExpectations(t)
}

func TestSectionHandler_Create_MissingName(t *testing.T) {
	h, mockSvc := newSectionHandler()

	w := httptest.NewRecorder()
	h.Create(testContext(w, jsonRequest(http.MethodPost, "/api/v1/sections", map[string]string{
		"description": "no name",
	})))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSectionHandler_List_Success(t *testing.T) {
	h, mockSvc := newSectionHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Section{
		{ID: uuid.New(), Name: "Commercial Invoice"},
		{ID: uuid.New(), Name: "Export Permit"},
	}, nil)

	w := httptest.NewRecorder()
	h.List(testContext(w, jsonRequest(http.MethodGet, "/api/v1/sections", nil)))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.Section
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestSectionHandler_Update_NotFound(t *testing.T) {
	h, mockSvc := newSectionHandler()

	id := uuid.New()
	mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, domain.ErrSectionNotFound)

	w := httptest.NewRecorder()
	h.Update(testContext(w, jsonRequest(http.MethodPut, "/api/v1/sections/"+id.String(), map[string]string{
		"name": "Renamed",
	}), gin.Param{Key: "id", Value: id.String()}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSectionHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newSectionHandler()

	id := uuid.New()
	mockSvc.On("Delete", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	h.Delete(testContext(w, jsonRequest(http.MethodDelete, "/api/v1/sections/"+id.String(), nil),
		gin.Param{Key: "id", Value: id.String()}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.SuccessBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
