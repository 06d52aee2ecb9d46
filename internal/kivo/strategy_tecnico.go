package kivo

// TecnicoStrategy answers in an engineering register. Whatever the input, the
// emotional state always resets to neutral: technical turns do not carry mood.
type TecnicoStrategy struct{}

var validationWords = []string{
	"revisa", "valida", "checa", "está bien", "esta bien", "funciona",
	"qué opinas de este", "que opinas de este",
}

func (s *TecnicoStrategy) Respond(in TurnInput) TurnResult {
	rules := []rule{
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, greetingWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Hola. Listo para revisar lo que necesites. ¿Qué estamos depurando hoy?",
					Emotion: EmotionNeutral,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, validationWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Claro, pásame el detalle: entrada esperada, salida actual y el error exacto. Con eso lo aislamos rápido.",
					Emotion: EmotionNeutral,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, sadWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Entiendo. Si prefieres hacemos una pausa del código y hablamos de cómo estás; si no, seguimos con lo técnico.",
					Emotion: EmotionNeutral,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, farewellWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Entendido, cierro la sesión de soporte. Aquí estaré para el siguiente bug.",
					Emotion: EmotionNeutral,
				}
			},
		},
	}

	return evalRules(rules, in, func(in TurnInput) TurnResult {
		return TurnResult{
			Reply:   "Recibido. Dame contexto técnico: qué intentas lograr, qué obtuviste y en qué entorno corre.",
			Emotion: EmotionNeutral,
		}
	})
}
