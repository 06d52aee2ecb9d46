package kivo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kivo-assistant/internal/domain/entities"
)

func newTestProfile() *entities.StyleProfile {
	return &entities.StyleProfile{UserID: "u1", Slang: []string{}}
}

func TestEvaluateSadnessOffersHelpThenExercise(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()
	now := afternoon()

	res := engine.Evaluate("estoy muy triste", sess, profile, now)
	require.Equal(t, replySadOffer, res.Response)
	require.Equal(t, EmotionTristeOfreciendo, res.Emotion)
	assert.Equal(t, ModeEmocional, res.FinalMode)

	// Immediate follow-up accepting the offer.
	res = engine.Evaluate("dale", sess, profile, now.Add(30*time.Second))
	assert.Equal(t, replyBreathing, res.Response)
	assert.Equal(t, EmotionTriste, res.Emotion)
	assert.Equal(t, EmotionTriste, sess.Emotion)
}

func TestEvaluatePendingOfferResolvesWhateverTheText(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()

	engine.Evaluate("estoy muy triste", sess, profile, afternoon())
	res := engine.Evaluate("háblame del clima de tu ciudad", sess, profile, afternoon().Add(time.Minute))

	assert.Equal(t, replyOfferDeclined, res.Response)
	assert.Equal(t, EmotionTriste, res.Emotion)
}

func TestEvaluateTechnicalInputForcesTechnicalVoice(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()
	profile.Voice = VoiceBarrio

	res := engine.Evaluate("el puerto 8080 está bloqueado por el firewall", sess, profile, afternoon())

	assert.Equal(t, ModeTecnico, res.FinalMode)
	assert.Equal(t, VoiceTecnico, res.Voice)
	assert.Equal(t, EmotionNeutral, res.Emotion)
	// The override is transient: the saved preference is untouched.
	assert.Equal(t, VoiceBarrio, profile.Voice)
}

func TestEvaluateBarrioTriggerIsSticky(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()

	res := engine.Evaluate("activa el modo barrio", sess, profile, afternoon())
	require.Equal(t, barrioActivationReply, res.Response)
	require.Equal(t, VoiceBarrio, profile.Voice)

	// A later neutral message keeps using the barrio strategy.
	res = engine.Evaluate("mira lo que encontré en la calle", sess, profile, afternoon().Add(time.Hour))
	assert.Equal(t, VoiceBarrio, res.Voice)
	assert.Equal(t, "Te escucho, carnal. Échame más detalle.", res.Response)
}

func TestEvaluatePaceCommentOnFastShortFollowUp(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()
	now := afternoon()

	engine.Evaluate("hola quería contarte algo curioso hoy", sess, profile, now)
	res := engine.Evaluate("y eso qué", sess, profile, now.Add(2*time.Second))

	assert.Contains(t, res.Response, paceSentence)
}

func TestEvaluateClimateCommentFromHistory(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()
	now := afternoon()

	for _, e := range []string{EmotionTriste, EmotionTriste, EmotionTriste, EmotionContento} {
		sess.RecordEmotion(e, now)
	}

	res := engine.Evaluate("cuéntame algo interesante de tu trabajo por favor", sess, profile, now)

	assert.Contains(t, res.Response, "últimamente te has sentido algo triste")
}

func TestEvaluateStyleAppliesFromPreviousTurns(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()
	now := afternoon()

	// Short first message teaches brevity; the reply itself is still full.
	res := engine.Evaluate("estoy muy triste", sess, profile, now)
	require.Equal(t, replySadOffer, res.Response)
	require.True(t, profile.PrefersShort)

	// From the next emotional-voice turn on, replies collapse to one sentence.
	sess.Emotion = EmotionNeutral
	res = engine.Evaluate("gracias por escucharme ayer de verdad ayudó bastante", sess, profile, now.Add(time.Hour))
	assert.Equal(t, "Con gusto.", res.Response)
}

func TestEvaluateTransientVoiceLabels(t *testing.T) {
	engine := NewEngine()
	sess := NewSession("u1")
	profile := newTestProfile()

	res := engine.Evaluate("no sirvo para nada últimamente", sess, profile, afternoon())

	assert.Equal(t, VoiceReflexivo, res.Voice)
	// Never persisted.
	assert.Equal(t, "", profile.Voice)
}
