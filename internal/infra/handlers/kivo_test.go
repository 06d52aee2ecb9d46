package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kivo-assistant/internal/domain/dto"
	"kivo-assistant/internal/infra/handlers"
	"kivo-assistant/internal/infra/logger"
)

type stubKivoService struct {
	lastUserID  string
	lastMessage string
}

func (s *stubKivoService) Evaluate(userID string, message string) (dto.KivoResponse, error) {
	s.lastUserID = userID
	s.lastMessage = message
	return dto.KivoResponse{
		Response:  "Te leo. Cuéntame más, estoy contigo.",
		FinalMode: "neutro",
		Emotion:   "neutral",
	}, nil
}

func TestKivoHandlerEvaluate(t *testing.T) {
	log := logger.NewLogger(context.Background(), false)
	stub := &stubKivoService{}
	handler := handlers.NewKivoHandlers(log, stub)

	body, _ := json.Marshal(dto.KivoRequest{UserID: "u1", Message: "hola"})
	req := httptest.NewRequest(http.MethodPost, "/api/kivo", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Evaluate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", stub.lastUserID)
	assert.Equal(t, "hola", stub.lastMessage)

	var resp dto.KivoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "neutral", resp.Emotion)
	assert.Equal(t, "neutro", resp.FinalMode)
}

func TestKivoHandlerRejectsBadRequests(t *testing.T) {
	log := logger.NewLogger(context.Background(), false)
	handler := handlers.NewKivoHandlers(log, &stubKivoService{})

	// Missing fields.
	body, _ := json.Marshal(dto.KivoRequest{UserID: "", Message: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/kivo", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Evaluate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Invalid JSON.
	req = httptest.NewRequest(http.MethodPost, "/api/kivo", bytes.NewReader([]byte("{")))
	rec = httptest.NewRecorder()
	handler.Evaluate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong method.
	req = httptest.NewRequest(http.MethodGet, "/api/kivo", nil)
	rec = httptest.NewRecorder()
	handler.Evaluate(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
