package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clearbook/services/analytics"
	"clearbook/services/forms"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFormsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	handler := NewFormsHandler(forms.NewRelayService(logger), analytics.NewEmitter(nil, logger), logger)

	router := gin.New()
	router.POST("/api/forms/:formName", handler.Submit)
	return router
}

func TestSubmitContactFormJSON(t *testing.T) {
	router := newFormsRouter()

	body, _ := json.Marshal(map[string]any{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"subject": "General enquiry",
		"message": "I need a sofa and two mattresses collected next week.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/forms/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var receipt forms.SubmissionReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	require.Equal(t, "Form submission processed", receipt.Message)
	require.Equal(t, "contact", receipt.FormName)
}

func TestSubmitContactFormValidationFailure(t *testing.T) {
	router := newFormsRouter()

	body, _ := json.Marshal(map[string]any{
		"name":    "Jane Smith",
		"email":   "not-an-email",
		"subject": "General enquiry",
		"message": "short",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/forms/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "email")
	require.Contains(t, resp.Errors, "message")
}

func TestSubmitFormURLEncoded(t *testing.T) {
	router := newFormsRouter()

	form := url.Values{}
	form.Set("name", "Jane Smith")
	form.Set("email", "jane@example.com")
	form.Set("subject", "General enquiry")
	form.Set("message", "Please collect a fridge freezer from my garage.")

	req := httptest.NewRequest(http.MethodPost, "/api/forms/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitUnknownFormRelayedAsIs(t *testing.T) {
	router := newFormsRouter()

	body, _ := json.Marshal(map[string]any{"anything": "goes"})
	req := httptest.NewRequest(http.MethodPost, "/api/forms/newsletter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitFormMalformedJSON(t *testing.T) {
	router := newFormsRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/forms/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "fallback")
}
