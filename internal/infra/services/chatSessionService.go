package services

import (
	"context"
	"fmt"

	"kivo-assistant/internal/domain/entities"
	"kivo-assistant/internal/domain/interfaces/repository"
	repocontants "kivo-assistant/internal/domain/interfaces/repository/contants"
	"kivo-assistant/internal/infra/logger"
)

// ChatSessionService is the service responsible for transcript persistence.
type ChatSessionService struct {
	SessionRepository repository.Repository[entities.ChatSession]
	Ctx               context.Context
	Logger            *logger.Logger
}

// NewChatSessionService creates a new instance of the service.
func NewChatSessionService(sessionRepository repository.Repository[entities.ChatSession], ctx context.Context, logger *logger.Logger) *ChatSessionService {
	return &ChatSessionService{
		SessionRepository: sessionRepository,
		Ctx:               ctx,
		Logger:            logger,
	}
}

// Create inserts a new ChatSession into the database.
func (css *ChatSessionService) Create(input entities.ChatSession) error {
	_, err := css.SessionRepository.Create(css.Ctx, repocontants.CHAT_SESSION_COLLECTION, input)
	if err != nil {
		css.Logger.Error(fmt.Sprintf("Failed to create ChatSession: %v", err))
		return err
	}
	return nil
}

// FindSession retrieves a ChatSession by user id.
func (css *ChatSessionService) FindSession(userID string) (entities.ChatSession, error) {
	result, err := css.SessionRepository.FindByUserID(css.Ctx, repocontants.CHAT_SESSION_COLLECTION, userID)
	if err != nil {
		css.Logger.Error(fmt.Sprintf("Failed to find ChatSession for user '%s': %v", userID, err))
		return entities.ChatSession{}, err
	}

	return result, nil
}

// UpdateSession updates a ChatSession by user id.
func (css *ChatSessionService) UpdateSession(userID string, entity entities.ChatSession) (entities.ChatSession, error) {
	// Clear _id so the upsert never conflicts with an existing document.
	entity.ID = ""

	result, err := css.SessionRepository.Update(css.Ctx, repocontants.CHAT_SESSION_COLLECTION, userID, entity)
	if err != nil {
		css.Logger.Error(fmt.Sprintf("Failed to update ChatSession for user '%s': %v", userID, err))
		return entities.ChatSession{}, err
	}

	return result, nil
}
