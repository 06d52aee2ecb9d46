package kivo

import (
	"time"

	"github.com/google/uuid"

	"kivo-assistant/internal/domain/entities"
)

const maxHistoryRecords = 10

// Session is the explicit per-session state of the engine: exactly one
// emotional state is active per turn and only strategies change it. No state
// lives in package-level variables.
type Session struct {
	ID            string
	UserID        string
	Emotion       string
	LastMessageAt time.Time
	History       []entities.EmotionRecord
}

func NewSession(userID string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		UserID:  userID,
		Emotion: EmotionNeutral,
	}
}

// RecordEmotion appends the emotion active after a turn, keeping the last 10.
func (s *Session) RecordEmotion(emotion string, at time.Time) {
	s.History = append(s.History, entities.EmotionRecord{Emotion: emotion, Timestamp: at})
	if len(s.History) > maxHistoryRecords {
		s.History = s.History[len(s.History)-maxHistoryRecords:]
	}
}

// RecentEmotions returns the last n recorded emotions, oldest first.
func (s *Session) RecentEmotions(n int) []string {
	start := 0
	if len(s.History) > n {
		start = len(s.History) - n
	}
	out := make([]string, 0, len(s.History)-start)
	for _, rec := range s.History[start:] {
		out = append(out, rec.Emotion)
	}
	return out
}
