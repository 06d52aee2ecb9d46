package kivo

import "strings"

// Persona voices. The voice is the ruleset that answers a turn; it is a
// different axis than the input mode.
const (
	VoiceEmocional = "emocional"
	VoiceTecnico   = "tecnico"
	VoiceBarrio    = "barrio"
	VoiceReflexivo = "reflexivo"
	VoiceCreativo  = "creativo"
)

const barrioTrigger = "modo barrio"

const barrioActivationReply = "Órale, quedamos en modo barrio, carnal. Aquí hablamos como en la banda, sin formalidades."

// VoiceSelection is the outcome of the per-turn voice transition.
// Voice is the effective voice for this turn only; PersistBarrio marks the one
// sticky transition, everything else stays transient.
type VoiceSelection struct {
	Voice         string
	PersistBarrio bool
	ShortCircuit  bool
	Reply         string
}

// SelectVoice evaluates the single voice transition for a turn:
//  1. technical input forces the technical voice, never persisted;
//  2. the barrio trigger phrase switches the saved preference to barrio and
//     answers with a canned reply, skipping every strategy;
//  3. otherwise the saved preference stands (emotional by default).
//
// The reflexivo/creativo overrides are not decided here; the emotional
// strategy labels them on its own branches and they never outlive the turn.
func SelectVoice(mode string, text string, savedVoice string) VoiceSelection {
	if mode == ModeTecnico {
		return VoiceSelection{Voice: VoiceTecnico}
	}

	if strings.Contains(text, barrioTrigger) {
		return VoiceSelection{
			Voice:         VoiceBarrio,
			PersistBarrio: true,
			ShortCircuit:  true,
			Reply:         barrioActivationReply,
		}
	}

	if savedVoice == "" {
		savedVoice = VoiceEmocional
	}
	return VoiceSelection{Voice: savedVoice}
}
