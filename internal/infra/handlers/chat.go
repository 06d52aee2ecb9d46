package handlers

import (
	"encoding/json"
	"net/http"

	"kivo-assistant/internal/domain/dto"
	Iservices "kivo-assistant/internal/domain/interfaces/services"
	"kivo-assistant/internal/infra/logger"
)

type ChatHandlers struct {
	Logger      *logger.Logger
	ChatService Iservices.IChatService
}

func NewChatHandlers(logger *logger.Logger, chatService Iservices.IChatService) *ChatHandlers {
	return &ChatHandlers{Logger: logger, ChatService: chatService}
}

// Chat receives a user message and relays the AI reply back to the client.
func (th *ChatHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var chatRequest dto.ChatRequest
	err := json.NewDecoder(r.Body).Decode(&chatRequest)
	if err != nil {
		http.Error(w, "Error to process JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if chatRequest.UserID == "" || chatRequest.Message == "" {
		http.Error(w, "user_id and message are required", http.StatusBadRequest)
		return
	}

	response, err := th.ChatService.ProcessMessage(chatRequest.UserID, chatRequest.Message)
	if err != nil {
		http.Error(w, "Error to process the message", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
