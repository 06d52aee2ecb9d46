package Iservices

import (
	"kivo-assistant/internal/domain/dto"
	"kivo-assistant/internal/domain/entities"
)

// IKivoService runs one turn of the rule-based persona engine for a user.
type IKivoService interface {
	Evaluate(userID string, message string) (dto.KivoResponse, error)
}

// IChatService is the LLM-backed conversation path.
type IChatService interface {
	ProcessMessage(userID string, message string) (dto.ChatResponse, error)
}

// IChatSessionService persists conversation transcripts.
type IChatSessionService interface {
	FindSession(userID string) (entities.ChatSession, error)
	Create(session entities.ChatSession) error
	UpdateSession(userID string, session entities.ChatSession) (entities.ChatSession, error)
}
