package handlers

import (
	"encoding/json"
	"net/http"

	"kivo-assistant/internal/domain/dto"
	Iservices "kivo-assistant/internal/domain/interfaces/services"
	"kivo-assistant/internal/infra/logger"
)

type KivoHandlers struct {
	Logger      *logger.Logger
	KivoService Iservices.IKivoService
}

func NewKivoHandlers(logger *logger.Logger, kivoService Iservices.IKivoService) *KivoHandlers {
	return &KivoHandlers{Logger: logger, KivoService: kivoService}
}

// Evaluate runs one turn of the rule-based persona engine and returns the
// deterministic reply with its resolved mode and emotion.
func (th *KivoHandlers) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var kivoRequest dto.KivoRequest
	err := json.NewDecoder(r.Body).Decode(&kivoRequest)
	if err != nil {
		http.Error(w, "Error to process JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if kivoRequest.UserID == "" || kivoRequest.Message == "" {
		http.Error(w, "user_id and message are required", http.StatusBadRequest)
		return
	}

	response, err := th.KivoService.Evaluate(kivoRequest.UserID, kivoRequest.Message)
	if err != nil {
		http.Error(w, "Error to evaluate the message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
