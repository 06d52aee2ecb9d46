package kivo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Climates worth commenting on when they diverge from the turn's own emotion.
var commentableClimates = map[string]bool{
	EmotionTriste:  true,
	EmotionConfuso: true,
	EmotionAnsioso: true,
}

const (
	windDownSentence    = " Ya es noche cerrada; quizá sea buen momento para bajar el ritmo y descansar."
	paceSentence        = " Noto que escribes rápido y breve. ¿Quieres que vayamos más al grano?"
	anniversarySentence = " Por cierto, hoy Kivo cumple un año más acompañando a su gente. Gracias por estar aquí. 🎉"
	emojiSuffix         = " 😊"
)

const (
	paceMaxChars   = 30
	paceMaxElapsed = 5000 * time.Millisecond
)

// Enrich appends the contextual add-ons and applies the style adaptations.
// Only the emotional voice runs this pass. Order matters: the add-on sentences
// come first, style adaptation last, and the short-preference truncation
// operates on the whole assembled string, discarding anything appended before.
func Enrich(reply string, in TurnInput, resultEmotion string) string {
	if in.Climate != "" && commentableClimates[in.Climate] && in.Climate != resultEmotion {
		reply += fmt.Sprintf(" He notado que últimamente te has sentido algo %s. No estás a solas con eso.", in.Climate)
	}

	if TimeOfDayBucket(in.Now.Hour()) == BucketNocheDescanso {
		reply += windDownSentence
	}

	if utf8.RuneCountInString(in.Raw) < paceMaxChars && !in.LastMessageAt.IsZero() && in.Now.Sub(in.LastMessageAt) < paceMaxElapsed {
		reply += paceSentence
	}

	if in.Now.Month() == time.October && in.Now.Day() == 19 {
		reply += anniversarySentence
	}

	if in.Profile != nil {
		if in.Profile.Emojis {
			reply += emojiSuffix
		}
		if in.Profile.HasSlang("wey") {
			reply = strings.ReplaceAll(reply, "Cuéntame más", "Échame el chisme")
		}
		if in.Profile.PrefersShort {
			reply = strings.SplitN(reply, ".", 2)[0] + "."
		}
	}

	return reply
}
