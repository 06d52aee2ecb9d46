package kivo

import (
	"time"

	"kivo-assistant/internal/domain/entities"
)

// Emotional states. The two "ofreciendo_ayuda" values are pending-offer
// sub-states: an exercise was proposed and the next turn must resolve it.
const (
	EmotionNeutral   = "neutral"
	EmotionTriste    = "triste"
	EmotionAnsioso   = "ansioso"
	EmotionContento  = "contento"
	EmotionConfuso   = "confuso"
	EmotionReflexivo = "reflexivo"
	EmotionSolo      = "solo"
	EmotionEnojado   = "enojado"
	EmotionMiedo     = "miedo"
	EmotionAburrido  = "aburrido"

	EmotionTristeOfreciendo  = "triste_ofreciendo_ayuda"
	EmotionAnsiosoOfreciendo = "ansioso_ofreciendo_ayuda"
)

// TurnInput carries everything a strategy may consult for one turn.
// Text is the lower-cased message; Raw keeps the original casing.
type TurnInput struct {
	Text          string
	Raw           string
	Emotion       string
	Submode       string
	Climate       string
	Profile       *entities.StyleProfile
	Now           time.Time
	LastMessageAt time.Time
}

// TurnResult is a strategy's answer: the reply, the next emotional state and,
// when a branch resolves a different display voice, its transient label.
// SkipEnrich marks the replies that must go out verbatim.
type TurnResult struct {
	Reply      string
	Emotion    string
	VoiceLabel string
	SkipEnrich bool
}

// Strategy maps one classified turn to a reply and the next emotional state.
type Strategy interface {
	Respond(in TurnInput) TurnResult
}

// rule pairs a predicate with its handler. Strategies evaluate their rules in
// declaration order so precedence is explicit and testable per rule.
type rule struct {
	match   func(in TurnInput) bool
	respond func(in TurnInput) TurnResult
}

func evalRules(rules []rule, in TurnInput, fallback func(in TurnInput) TurnResult) TurnResult {
	for _, r := range rules {
		if r.match(in) {
			return r.respond(in)
		}
	}
	return fallback(in)
}

// StrategyFor returns the ruleset that handles the given effective voice.
// Unknown voices fall back to the emotional strategy.
func StrategyFor(voice string) Strategy {
	switch voice {
	case VoiceTecnico:
		return &TecnicoStrategy{}
	case VoiceBarrio:
		return &BarrioStrategy{}
	case VoiceReflexivo:
		return &ReflexivoStrategy{}
	default:
		return &EmocionalStrategy{}
	}
}
