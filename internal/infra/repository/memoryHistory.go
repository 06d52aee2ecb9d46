package repository

import (
	"context"
	"sync"

	"kivo-assistant/internal/domain/entities"
)

// MemoryHistoryStore is the in-process fallback used when no redis address is
// configured, and in tests.
type MemoryHistoryStore struct {
	mu      sync.Mutex
	records map[string][]entities.EmotionRecord
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{records: map[string][]entities.EmotionRecord{}}
}

func (s *MemoryHistoryStore) Append(_ context.Context, sessionID string, record entities.EmotionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.records[sessionID], record)
	if len(list) > historyCap {
		list = list[len(list)-historyCap:]
	}
	s.records[sessionID] = list
	return nil
}

func (s *MemoryHistoryStore) LastN(_ context.Context, sessionID string, n int) ([]entities.EmotionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.records[sessionID]
	if len(list) > n {
		list = list[len(list)-n:]
	}
	out := make([]entities.EmotionRecord, len(list))
	copy(out, list)
	return out, nil
}
