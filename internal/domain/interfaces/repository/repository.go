package repository

import (
	"context"

	"kivo-assistant/internal/domain/entities"
)

type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, entity T) (T, error)
	Update(ctx context.Context, collectionName string, userID string, entity T) (T, error)
	Delete(ctx context.Context, collectionName string, id string) error
	FindByUserID(ctx context.Context, collectionName string, userID string) (T, error)
	FindAll(ctx context.Context, collectionName string) ([]T, error)
}

// HistoryStore keeps the per-session emotion history as an append-only,
// capped sequence readable as "last N".
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, record entities.EmotionRecord) error
	LastN(ctx context.Context, sessionID string, n int) ([]entities.EmotionRecord, error)
}
