package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/handler"
	"docreview/internal/service"
	"docreview/mocks"
)

func newSettingsHandler() (*handler.SettingsHandler, *mocks.MockSettingsService) {
	mockSvc := new(mocks.MockSettingsService)
	h := handler.NewSettingsHandler(mockSvc)
	return h, mockSvc
}

func TestSettingsHandler_List_ReturnsMap(t *testing.T) {
	h, mockSvc := newSettingsHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Setting{
		{Key: domain.SettingGeminiAPIKey, Value: "********1234"},
		{Key: "company_name", Value: "Acme Exports"},
	}, nil)

	w := httptest.NewRecorder()
	h.List(testContext(w, jsonRequest(http.MethodGet, "/api/v1/settings", nil)))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "********1234", resp[domain.SettingGeminiAPIKey])
	assert.Equal(t, "Acme Exports", resp["company_name"])
}

func TestSettingsHandler_Upsert_Success(t *testing.T) {
	h, mockSvc := newSettingsHandler()

	mockSvc.On("Upsert", mock.Anything, service.UpsertSettingInput{
		Key:   domain.SettingGeminiAPIKey,
		Value: "new-key",
	}).Return(&domain.Setting{Key: domain.SettingGeminiAPIKey, Value: "*****w-key"}, nil)

	w := httptest.NewRecorder()
	h.Upsert(testContext(w, jsonRequest(http.MethodPost, "/api/v1/settings", map[string]string{
		"key":   domain.SettingGeminiAPIKey,
		"value": "new-key",
	})))

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_Upsert_MissingKey(t *testing.T) {
	h, mockSvc := newSettingsHandler()

	w := httptest.NewRecorder()
	h.Upsert(testContext(w, jsonRequest(http.MethodPost, "/api/v1/settings", map[string]string{
		"value": "orphan",
	})))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
