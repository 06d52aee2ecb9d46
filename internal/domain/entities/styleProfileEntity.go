package entities

import "time"

// StyleProfile holds the incrementally learned writing style of one user.
// Slang accumulation is monotonic; the boolean and enum fields are overwritten
// on every turn they match.
type StyleProfile struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	Slang         []string  `json:"slang" bson:"slang"`
	Emojis        bool      `json:"emojis" bson:"emojis"`
	PrefersShort  bool      `json:"prefers_short" bson:"prefers_short"`
	GreetingType  string    `json:"greeting_type" bson:"greeting_type"`   // formal | informal
	GratitudeType string    `json:"gratitude_type" bson:"gratitude_type"` // simple | expresivo
	Voice         string    `json:"voice" bson:"voice"`                   // persisted persona voice
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

// HasSlang reports whether the given word was already learned.
func (p *StyleProfile) HasSlang(word string) bool {
	for _, s := range p.Slang {
		if s == word {
			return true
		}
	}
	return false
}
