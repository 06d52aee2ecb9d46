package kivo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectVoiceTechnicalOverride(t *testing.T) {
	sel := SelectVoice(ModeTecnico, "el servidor no responde", VoiceBarrio)
	assert.Equal(t, VoiceTecnico, sel.Voice)
	assert.False(t, sel.PersistBarrio)
	assert.False(t, sel.ShortCircuit)
}

func TestSelectVoiceBarrioTrigger(t *testing.T) {
	sel := SelectVoice(ModeNeutro, "activa el modo barrio porfa", VoiceEmocional)
	assert.Equal(t, VoiceBarrio, sel.Voice)
	assert.True(t, sel.PersistBarrio)
	assert.True(t, sel.ShortCircuit)
	assert.Equal(t, barrioActivationReply, sel.Reply)
}

func TestSelectVoiceSavedPreference(t *testing.T) {
	sel := SelectVoice(ModeNeutro, "cuéntame algo", VoiceReflexivo)
	assert.Equal(t, VoiceReflexivo, sel.Voice)

	// Empty preference defaults to the emotional voice.
	sel = SelectVoice(ModeNeutro, "cuéntame algo", "")
	assert.Equal(t, VoiceEmocional, sel.Voice)
}
