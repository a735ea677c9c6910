package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voiceorder/internal/config"
	"voiceorder/internal/logger"
	"voiceorder/internal/model"
	"voiceorder/internal/repository"
	"voiceorder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	faq, err := service.NewFAQMatcher([]model.FAQEntry{
		{Question: "What are the pool opening hours?", Answer: "The pool is open daily from 7 AM to 10 PM."},
	}, service.MatchTokenSet, service.DefaultFrequentMin)
	require.NoError(t, err)
	classifier, err := service.NewIntentClassifier(service.DefaultIntentRules())
	require.NoError(t, err)

	assistant := service.NewAssistant(
		faq,
		classifier,
		service.NewResponseComposer(),
		service.NewLexiconAnalyzer(),
		repository.NewMemoryContextStore(),
		repository.NopSink{},
	)
	t.Cleanup(assistant.Wait)

	return NewRouter(config.ServerConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type",
	}, assistant, BuildInfo{Version: "test"})
}

func postJSON(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVoiceOrder_Order(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/voice-order", model.VoiceOrderRequest{Input: "pizza please", UserID: "u1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.VoiceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Room Service Order", resp.Intent)
	assert.Equal(t, model.SourceRules, resp.Source)
	assert.Equal(t, "u1", resp.UserID)
	require.NotNil(t, resp.Sentiment)
	require.NotNil(t, resp.Score)
	assert.Contains(t, resp.Response, "Your order has been received.")
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, w.Header().Get(logger.RequestIDHeader))

	w = postJSON(router, "/api/v1/voice-order", model.VoiceOrderRequest{Input: "I want a burger", UserID: "u1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "Your previous order was 'pizza please'.")
}

func TestVoiceOrder_FAQ(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/voice-order", map[string]string{"input": "what are the pool opening hours"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.VoiceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The pool is open daily from 7 AM to 10 PM.", resp.Response)
	assert.Equal(t, model.SourceFAQ, resp.Source)
	assert.Equal(t, 100.0, resp.MatchScore)
	assert.Equal(t, model.DefaultUserID, resp.UserID)
}

func TestVoiceOrder_NoInput(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []any{
		map[string]string{},
		map[string]string{"input": "   "},
		map[string]string{"user_id": "u1"},
	} {
		w := postJSON(router, "/api/voice-order", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"No input provided"}`, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/api/voice-order", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No input provided"}`, w.Body.String())
}

func TestVoiceOrder_RequestIDPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/voice-order", bytes.NewBufferString(`{"input":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(logger.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(logger.RequestIDHeader))

	var resp model.VoiceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, "Greeting", resp.Intent)
}

func TestFeedback_Submit(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/feedback", model.FeedbackRequest{Feedback: "Lovely stay", UserID: "u1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	w = postJSON(router, "/api/v1/feedback", model.FeedbackRequest{Feedback: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndVersion(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "test", body["version"])
	}
}
