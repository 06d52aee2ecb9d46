package kivo

import (
	"strings"
	"time"

	"kivo-assistant/internal/domain/entities"
)

// Result is the outcome of one evaluated turn.
type Result struct {
	Response  string
	FinalMode string
	Emotion   string
	Voice     string
}

// Engine composes the classifier, the voice selector, the strategies and the
// enrichment pass into the public evaluate call. It holds no state of its own;
// everything lives in the Session and StyleProfile passed per call, so a turn
// never errors and is deterministic for identical state (slang accumulation
// and the pace sentence are the only time-dependent effects).
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs one conversational turn. It mutates the session and the
// profile in place; persisting them is the caller's concern.
func (e *Engine) Evaluate(rawInput string, sess *Session, profile *entities.StyleProfile, now time.Time) Result {
	text := strings.ToLower(strings.TrimSpace(rawInput))

	mode := ClassifyMode(text)
	submode := ClassifySubmode(text)

	selection := SelectVoice(mode, text, profile.Voice)
	if selection.PersistBarrio {
		profile.Voice = VoiceBarrio
	}

	if selection.ShortCircuit {
		UpdateStyleProfile(profile, rawInput)
		sess.RecordEmotion(sess.Emotion, now)
		sess.LastMessageAt = now
		return Result{
			Response:  selection.Reply,
			FinalMode: mode,
			Emotion:   sess.Emotion,
			Voice:     selection.Voice,
		}
	}

	in := TurnInput{
		Text:          text,
		Raw:           rawInput,
		Emotion:       sess.Emotion,
		Submode:       submode,
		Climate:       MoodClimate(sess.RecentEmotions(5)),
		Profile:       profile,
		Now:           now,
		LastMessageAt: sess.LastMessageAt,
	}

	res := StrategyFor(selection.Voice).Respond(in)

	// Enrichment runs for the emotional voice only; the other voices answer
	// bare. The asymmetry mirrors the product behavior.
	if selection.Voice == VoiceEmocional && !res.SkipEnrich {
		res.Reply = Enrich(res.Reply, in, res.Emotion)
	}

	// The reply was styled with the profile as it stood at the start of the
	// turn; what this message teaches about the user applies from the next
	// turn on. The update still lands before persistence is dispatched.
	UpdateStyleProfile(profile, rawInput)

	sess.Emotion = res.Emotion
	sess.RecordEmotion(res.Emotion, now)
	sess.LastMessageAt = now

	// The tecnico/reflexivo/creativo overrides live only for this turn: the
	// persisted preference in the profile was never touched for them.
	voice := selection.Voice
	if res.VoiceLabel != "" {
		voice = res.VoiceLabel
	}

	return Result{
		Response:  res.Reply,
		FinalMode: mode,
		Emotion:   res.Emotion,
		Voice:     voice,
	}
}
