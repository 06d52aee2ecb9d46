package kivo

// BarrioStrategy answers in colloquial slang. Only the matched emotional
// branches update the state; everything else leaves it as it was.
type BarrioStrategy struct{}

func (s *BarrioStrategy) Respond(in TurnInput) TurnResult {
	rules := []rule{
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, sadWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Ánimo, carnal. Los días grises también se van. Aquí anda tu banda pa' lo que necesites.",
					Emotion: EmotionTriste,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, anxiousWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Tranqui, wey. Respira hondo, que no hay bronca que dure cien años. Vamos con calma.",
					Emotion: EmotionAnsioso,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, positiveWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "¡Eso, carnal! Qué chido verte así. A seguirle con todo.",
					Emotion: EmotionContento,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, greetingWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "¡Qué onda, wey! Aquí andamos al cien. ¿Qué cuentas?",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, plainThanks) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "No hay de qué, carnal. Pa' eso estamos.",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, silenceWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Va, te dejo tranqui. Aquí me quedo al pendiente, sin presión.",
					Emotion: in.Emotion,
				}
			},
		},
	}

	return evalRules(rules, in, func(in TurnInput) TurnResult {
		return TurnResult{
			Reply:   "Te escucho, carnal. Échame más detalle.",
			Emotion: in.Emotion,
		}
	})
}
