package services

import (
	"fmt"
	"time"

	"kivo-assistant/internal/domain/dto"
	"kivo-assistant/internal/domain/entities"
	Iservices "kivo-assistant/internal/domain/interfaces/services"
	"kivo-assistant/internal/infra/logger"
)

// ChatService is the LLM-backed conversation path: it wraps the user message
// in the generated system prompt, forwards it to the AI query service and
// keeps the transcript.
type ChatService struct {
	Logger             *logger.Logger
	ChatSessionService Iservices.IChatSessionService
	ProfileService     Iservices.IProfileService
	QueryAIService     Iservices.IQueryAIService
	PromptService      *PromptService
}

func NewChatService(logger *logger.Logger, chatSessionService Iservices.IChatSessionService, profileService Iservices.IProfileService, queryAIService Iservices.IQueryAIService, promptService *PromptService) *ChatService {
	return &ChatService{
		Logger:             logger,
		ChatSessionService: chatSessionService,
		ProfileService:     profileService,
		QueryAIService:     queryAIService,
		PromptService:      promptService,
	}
}

func (cs *ChatService) ProcessMessage(userID string, message string) (dto.ChatResponse, error) {
	session, err := cs.ChatSessionService.FindSession(userID)
	if err != nil {
		cs.Logger.Warn(fmt.Sprintf("Session not found for user %s. Initializing new session.", userID))
		session = entities.ChatSession{
			UserID:     userID,
			Transcript: []entities.Transcript{},
			Context:    "",
		}

		if err := cs.ChatSessionService.Create(session); err != nil {
			cs.Logger.Error(fmt.Sprintf("Error to create a new session for %s. Err: %v", userID, err))
		}
	}

	session.Transcript = append(session.Transcript, entities.Transcript{
		Role:      "user",
		Message:   message,
		Timestamp: time.Now(),
	})

	profile := cs.ProfileService.FindOrCreate(userID)
	systemPrompt := cs.PromptService.BuildSystemPrompt(profile, message)

	result, err := cs.QueryAIService.ExecuteQueryAI(message, systemPrompt)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to execute AI query: %s", err.Error()))
		return dto.ChatResponse{}, err
	}

	session.Transcript = append(session.Transcript, entities.Transcript{
		Role:      "agent",
		Message:   result.Response,
		Timestamp: time.Now(),
	})
	session.Context = result.Response

	session.UpdatedAt = time.Now()
	if _, err := cs.ChatSessionService.UpdateSession(userID, session); err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to update chat session: %s", err.Error()))
	}

	return dto.ChatResponse{Response: result.Response}, nil
}
