package kivo

import "strings"

// ReflexivoStrategy slows the conversation down and turns statements into
// questions. Self-deprecating beliefs take priority over everything else.
type ReflexivoStrategy struct{}

func (s *ReflexivoStrategy) Respond(in TurnInput) TurnResult {
	rules := []rule{
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, beliefWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Detente un momento en esa idea. ¿Es un hecho, o una creencia que repites? ¿Qué le dirías a un amigo que pensara eso de sí mismo?",
					Emotion: EmotionReflexivo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return in.Submode == SubmodeReflexivo },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Qué pregunta tan honda. Antes de buscarle respuesta, ¿qué te hizo pensarla justo hoy?",
					Emotion: EmotionReflexivo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return in.Submode == SubmodeCreativo },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "La imaginación también es una forma de pensar. Dibujemos la idea con palabras: ¿cómo empieza?",
					Emotion: EmotionReflexivo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, greetingWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Hola. Me alegra este espacio de calma. ¿Qué trae tu mente hoy?",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool {
				return containsAny(in.Text, sadWords) || containsAny(in.Text, anxiousWords)
			},
			respond: func(in TurnInput) TurnResult {
				// "triste" anywhere in the text decides between the two labels.
				emotion := EmotionAnsioso
				if strings.Contains(in.Text, "triste") {
					emotion = EmotionTriste
				}
				return TurnResult{
					Reply:   "Lo que sientes merece ser mirado con calma, no con prisa. ¿Desde cuándo lo traes contigo?",
					Emotion: emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, dontKnowWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "No saber puede ser el comienzo de una buena pregunta. Quedémonos un momento con ella.",
					Emotion: in.Emotion,
				}
			},
		},
	}

	return evalRules(rules, in, func(in TurnInput) TurnResult {
		return TurnResult{
			Reply:   "¿Y si lo miramos desde otro ángulo? ¿Qué sería lo esencial de eso que me cuentas?",
			Emotion: in.Emotion,
		}
	})
}
