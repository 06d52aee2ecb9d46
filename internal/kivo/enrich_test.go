package kivo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kivo-assistant/internal/domain/entities"
)

func afternoon() time.Time {
	return time.Date(2026, time.March, 5, 15, 0, 0, 0, time.UTC)
}

func TestEnrichClimateSentence(t *testing.T) {
	in := TurnInput{
		Climate: EmotionTriste,
		Now:     afternoon(),
		Profile: &entities.StyleProfile{},
	}

	got := Enrich("Te leo.", in, EmotionNeutral)
	assert.Contains(t, got, "últimamente te has sentido algo triste")

	// No comment when the climate matches the turn's own emotion.
	got = Enrich("Te leo.", in, EmotionTriste)
	assert.NotContains(t, got, "últimamente")

	// Only triste/confuso/ansioso climates are commented.
	in.Climate = EmotionContento
	got = Enrich("Te leo.", in, EmotionNeutral)
	assert.NotContains(t, got, "últimamente")
}

func TestEnrichWindDownAtNight(t *testing.T) {
	in := TurnInput{
		Now:     time.Date(2026, time.March, 5, 23, 30, 0, 0, time.UTC),
		Profile: &entities.StyleProfile{},
	}

	got := Enrich("Te leo.", in, EmotionNeutral)
	assert.Contains(t, got, windDownSentence)
}

func TestEnrichPaceSentence(t *testing.T) {
	now := afternoon()
	in := TurnInput{
		Raw:           "y eso qué",
		Now:           now,
		LastMessageAt: now.Add(-2 * time.Second),
		Profile:       &entities.StyleProfile{},
	}

	got := Enrich("Te leo.", in, EmotionNeutral)
	assert.Contains(t, got, paceSentence)

	// Slow follow-ups are not commented.
	in.LastMessageAt = now.Add(-10 * time.Second)
	got = Enrich("Te leo.", in, EmotionNeutral)
	assert.NotContains(t, got, paceSentence)

	// Neither is a fast but long message.
	in.LastMessageAt = now.Add(-2 * time.Second)
	in.Raw = strings.Repeat("palabras ", 6)
	got = Enrich("Te leo.", in, EmotionNeutral)
	assert.NotContains(t, got, paceSentence)
}

func TestEnrichAnniversary(t *testing.T) {
	in := TurnInput{
		Now:     time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC),
		Profile: &entities.StyleProfile{},
	}

	got := Enrich("Te leo.", in, EmotionNeutral)
	assert.Contains(t, got, anniversarySentence)
}

func TestEnrichStyleAdaptations(t *testing.T) {
	in := TurnInput{
		Now:     afternoon(),
		Profile: &entities.StyleProfile{Emojis: true},
	}

	got := Enrich("Te leo.", in, EmotionNeutral)
	assert.True(t, strings.HasSuffix(got, emojiSuffix))

	in.Profile = &entities.StyleProfile{Slang: []string{"wey"}}
	got = Enrich("Te leo. Cuéntame más de eso.", in, EmotionNeutral)
	assert.Contains(t, got, "Échame el chisme")
}

func TestEnrichTruncationDiscardsEverythingAppended(t *testing.T) {
	reply := "Te escucho. Lo que sientes es válido."
	in := TurnInput{
		Raw:           "ok",
		Climate:       EmotionTriste,
		Now:           time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC),
		LastMessageAt: time.Date(2026, time.October, 19, 22, 59, 58, 0, time.UTC),
		Profile:       &entities.StyleProfile{Emojis: true, PrefersShort: true},
	}

	got := Enrich(reply, in, EmotionNeutral)

	// Truncation runs last on the whole string: climate, wind-down, pace,
	// anniversary and emoji are all discarded.
	assert.Equal(t, strings.SplitN(reply, ".", 2)[0]+".", got)
	assert.Equal(t, "Te escucho.", got)
}
