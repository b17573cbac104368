package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docreview/internal/config"
	"docreview/internal/port"
	"docreview/internal/provider"
	"docreview/internal/provider/gemini"
)

func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGenerate_SendsPartsAndReturnsText(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(candidateResponse("## Commercial Invoice\n- ok"))
	}))
	defer srv.Close()

	g := gemini.NewGeneratorWithEndpoint(&config.ProviderConfig{DefaultModel: "gemini-2.5-flash"}, srv.URL)

	text, err := g.Generate(context.Background(), "test-key", []port.Part{
		port.PDFPart("ZGF0YQ=="),
		port.TextPart("compare the documents"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "## Commercial Invoice\n- ok", text)

	contents := captured["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	assert.Len(t, parts, 2)

	inline := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
	assert.Equal(t, "application/pdf", inline["mime_type"])
	assert.Equal(t, "ZGF0YQ==", inline["data"])
	assert.Equal(t, "compare the documents", parts[1].(map[string]interface{})["text"])
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := gemini.NewGeneratorWithEndpoint(&config.ProviderConfig{}, srv.URL)

	_, err := g.Generate(context.Background(), "test-key", []port.Part{port.TextPart("hi")})

	var rateErr *provider.RateLimitError
	assert.True(t, errors.As(err, &rateErr))
	assert.Equal(t, "gemini", rateErr.Provider)
	assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
}

func TestGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	g := gemini.NewGeneratorWithEndpoint(&config.ProviderConfig{}, srv.URL)

	_, err := g.Generate(context.Background(), "test-key", []port.Part{port.TextPart("hi")})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	g := gemini.NewGeneratorWithEndpoint(&config.ProviderConfig{}, srv.URL)

	_, err := g.Generate(context.Background(), "test-key", []port.Part{port.TextPart("hi")})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
