package kivo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTecnicoAlwaysResetsToNeutral(t *testing.T) {
	s := &TecnicoStrategy{}

	inputs := []string{
		"hola",
		"revisa este endpoint",
		"estoy triste por el deploy",
		"adios",
		"cualquier otra cosa",
	}
	for _, text := range inputs {
		res := s.Respond(TurnInput{Text: text, Emotion: EmotionAnsioso})
		assert.Equal(t, EmotionNeutral, res.Emotion, "input %q", text)
		assert.NotEmpty(t, res.Reply)
	}
}

func TestBarrioUpdatesEmotionOnlyOnMatchedBranches(t *testing.T) {
	s := &BarrioStrategy{}

	res := s.Respond(TurnInput{Text: "ando bien triste", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionTriste, res.Emotion)

	res = s.Respond(TurnInput{Text: "gracias", Emotion: EmotionTriste})
	assert.Equal(t, EmotionTriste, res.Emotion)

	// Unmatched input keeps the emotion and falls back to an acknowledgement.
	res = s.Respond(TurnInput{Text: "mira lo que encontré", Emotion: EmotionMiedo})
	assert.Equal(t, EmotionMiedo, res.Emotion)
	assert.Equal(t, "Te escucho, carnal. Échame más detalle.", res.Reply)
}

func TestReflexivoDisambiguatesSadnessFromAnxiety(t *testing.T) {
	s := &ReflexivoStrategy{}

	res := s.Respond(TurnInput{Text: "me siento triste", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionTriste, res.Emotion)

	res = s.Respond(TurnInput{Text: "la ansiedad no me deja", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionAnsioso, res.Emotion)
}

func TestReflexivoBeliefTakesPriority(t *testing.T) {
	s := &ReflexivoStrategy{}

	res := s.Respond(TurnInput{Text: "soy un fracaso y estoy triste", Emotion: EmotionNeutral, Submode: SubmodeReflexivo})
	assert.Equal(t, EmotionReflexivo, res.Emotion)
	assert.Contains(t, res.Reply, "creencia")
}

func TestEmocionalCascadeOrder(t *testing.T) {
	s := &EmocionalStrategy{}

	// Belief beats sadness.
	res := s.Respond(TurnInput{Text: "no sirvo para nada y estoy triste", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionReflexivo, res.Emotion)
	assert.Equal(t, VoiceReflexivo, res.VoiceLabel)

	// Sadness opens a pending offer instead of landing on the terminal emotion.
	res = s.Respond(TurnInput{Text: "estoy muy triste", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionTristeOfreciendo, res.Emotion)
	assert.Equal(t, replySadOffer, res.Reply)

	res = s.Respond(TurnInput{Text: "tengo mucha ansiedad", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionAnsiosoOfreciendo, res.Emotion)
	assert.Equal(t, replyAnxiousOffer, res.Reply)
}

func TestEmocionalMixedAndSarcasticFeelings(t *testing.T) {
	s := &EmocionalStrategy{}

	res := s.Respond(TurnInput{Text: "estoy bien pero no del todo", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionConfuso, res.Emotion)

	res = s.Respond(TurnInput{Text: "genial, como sea", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionConfuso, res.Emotion)

	res = s.Respond(TurnInput{Text: "hoy me siento genial", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionContento, res.Emotion)
}

func TestEmocionalKeywordsMatchWholeWordsOnly(t *testing.T) {
	s := &EmocionalStrategy{}

	// "tambien" must not trip the positive branch through "bien".
	res := s.Respond(TurnInput{Text: "tambien me duele la cabeza", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionNeutral, res.Emotion)
	assert.Equal(t, "Te leo. Cuéntame más, estoy contigo.", res.Reply)

	res = s.Respond(TurnInput{Text: "hoy me siento bien", Emotion: EmotionNeutral})
	assert.Equal(t, EmotionContento, res.Emotion)
}

func TestEmocionalPendingOfferBlocksEveryOtherBranch(t *testing.T) {
	s := &EmocionalStrategy{}

	// Even an input that would match the anger branch resolves the offer.
	res := s.Respond(TurnInput{Text: "estoy enojado contigo", Emotion: EmotionTristeOfreciendo})
	assert.Equal(t, replyOfferDeclined, res.Reply)
	assert.Equal(t, EmotionTriste, res.Emotion)

	res = s.Respond(TurnInput{Text: "dale", Emotion: EmotionTristeOfreciendo})
	assert.Equal(t, replyBreathing, res.Reply)
	assert.Equal(t, EmotionTriste, res.Emotion)

	res = s.Respond(TurnInput{Text: "sí", Emotion: EmotionAnsiosoOfreciendo})
	assert.Equal(t, replyGrounding, res.Reply)
	assert.Equal(t, EmotionAnsioso, res.Emotion)
}

func TestEmocionalFallbackGenericTable(t *testing.T) {
	s := &EmocionalStrategy{}

	res := s.Respond(TurnInput{Text: "mmm", Emotion: EmotionTriste})
	assert.Contains(t, res.Reply, "Lo que sientes es válido")
	assert.Equal(t, EmotionTriste, res.Emotion)

	res = s.Respond(TurnInput{Text: "mmm", Emotion: EmotionAnsioso})
	assert.Contains(t, res.Reply, "paso a paso")

	res = s.Respond(TurnInput{Text: "mmm", Emotion: EmotionNeutral})
	assert.Equal(t, "Te leo. Cuéntame más, estoy contigo.", res.Reply)
}
