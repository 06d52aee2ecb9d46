package entities

import "time"

// ChatSession stores the LLM-backed conversation transcript, one per user.
type ChatSession struct {
	ID         string       `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string       `json:"user_id" bson:"user_id"`
	Transcript []Transcript `json:"transcript" bson:"transcript"`
	Context    string       `json:"context" bson:"context"`
	UpdatedAt  time.Time    `json:"updatedAt" bson:"updated_at"`
}

type Transcript struct {
	Role      string    `json:"role" bson:"role"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// EmotionRecord is one entry of the per-session emotion history, used for
// mood-climate detection over the most recent turns.
type EmotionRecord struct {
	Emotion   string    `json:"emotion" bson:"emotion"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
