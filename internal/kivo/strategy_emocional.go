package kivo

// Reply templates for the emotional voice branches that other turns depend on
// (the pending-offer handshake).
const (
	replySadOffer      = "Siento mucho que te sientas así. A veces ayuda ponerle palabras a lo que duele. ¿Quieres que hagamos juntos un ejercicio de respiración?"
	replyAnxiousOffer  = "Respira un momento conmigo. La ansiedad se siente enorme, pero pasa. ¿Quieres que probemos un ejercicio corto para calmarla?"
	replyBreathing     = "Perfecto. Inhala contando hasta cuatro, sostén el aire cuatro segundos y exhala lento contando hasta seis. Repitámoslo tres veces juntos."
	replyGrounding     = "Va. Nombra cinco cosas que puedas ver, cuatro que puedas tocar, tres que puedas oír, dos que puedas oler y una que puedas saborear."
	replyOfferDeclined = "No hay problema. Estoy aquí para cuando lo necesites."
)

// EmocionalStrategy is the primary voice. Order of evaluation:
// pending-offer resolution, then the emotion cascade, then the contextual
// fallback. The enrichment pass runs afterwards in the engine.
type EmocionalStrategy struct{}

func (s *EmocionalStrategy) Respond(in TurnInput) TurnResult {
	// A pending offer blocks every other branch until it is resolved.
	if in.Emotion == EmotionTristeOfreciendo || in.Emotion == EmotionAnsiosoOfreciendo {
		return s.resolvePendingOffer(in)
	}

	if res, ok := s.detectEmotion(in); ok {
		return res
	}

	return s.contextualFallback(in)
}

// resolvePendingOffer interprets the answer to a proposed coping exercise.
// Any non-affirmative reply counts as a decline; either way the state
// downgrades to the base emotion.
func (s *EmocionalStrategy) resolvePendingOffer(in TurnInput) TurnResult {
	base := EmotionTriste
	exercise := replyBreathing
	if in.Emotion == EmotionAnsiosoOfreciendo {
		base = EmotionAnsioso
		exercise = replyGrounding
	}

	// The exercise and reassurance go out verbatim: this branch returns
	// immediately, before the enrichment pass.
	if isAffirmative(in.Text) {
		return TurnResult{Reply: exercise, Emotion: base, SkipEnrich: true}
	}
	return TurnResult{Reply: replyOfferDeclined, Emotion: base, SkipEnrich: true}
}

// detectEmotion runs the ordered emotion cascade; the first matching group
// wins. Sadness and anxiety move into their pending-offer sub-state so the
// exercise is only given after consent on the next turn.
func (s *EmocionalStrategy) detectEmotion(in TurnInput) (TurnResult, bool) {
	rules := []rule{
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, beliefWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:      "Eso que dices suena a una creencia muy dura contigo mismo. ¿Qué evidencia real tienes de que sea cierta?",
					Emotion:    EmotionReflexivo,
					VoiceLabel: VoiceReflexivo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, sadWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{Reply: replySadOffer, Emotion: EmotionTristeOfreciendo}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, anxiousWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{Reply: replyAnxiousOffer, Emotion: EmotionAnsiosoOfreciendo}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, lonelyWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "No estás a solas con esto. Aquí estoy contigo, y me alegra que me lo cuentes.",
					Emotion: EmotionSolo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, angryWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Tiene sentido que estés enojado. Sácalo sin miedo, aquí nadie te juzga. ¿Qué fue lo que más te molestó?",
					Emotion: EmotionEnojado,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, fearWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "El miedo avisa, pero no manda. Ahora mismo estás a salvo. ¿Quieres contarme qué te asusta?",
					Emotion: EmotionMiedo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, boredWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "El aburrimiento a veces es una pausa disfrazada. ¿Probamos algo distinto? Cuéntame más.",
					Emotion: EmotionAburrido,
				}
			},
		},
		{
			// "bien pero ..." reads as an ambiguous feeling, not a positive one.
			match: func(in TurnInput) bool {
				return containsAny(in.Text, []string{"bien"}) && containsAny(in.Text, []string{"pero"})
			},
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Dices que estás bien, pero siento que hay algo más detrás de ese pero. Cuéntame más.",
					Emotion: EmotionConfuso,
				}
			},
		},
		{
			match: func(in TurnInput) bool {
				return containsAny(in.Text, positiveWords) && containsAny(in.Text, sarcasticMarkers)
			},
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Mmm, eso sonó más irónico que alegre. ¿Cómo estás de verdad?",
					Emotion: EmotionConfuso,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, positiveWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "¡Qué gusto leerte así! Me contagias el ánimo. Cuéntame más de eso bueno.",
					Emotion: EmotionContento,
				}
			},
		},
	}

	for _, r := range rules {
		if r.match(in) {
			return r.respond(in), true
		}
	}
	return TurnResult{}, false
}

// contextualFallback only runs when no emotion was detected. The final generic
// reply depends on the emotional state the session already carried.
func (s *EmocionalStrategy) contextualFallback(in TurnInput) TurnResult {
	rules := []rule{
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, plainThanks) },
			respond: func(in TurnInput) TurnResult {
				reply := "Con gusto. Para eso estoy."
				if in.Profile != nil && in.Profile.GratitudeType == GratitudeExpresivo {
					reply = "¡Gracias a ti! De verdad me alegra acompañarte."
				}
				return TurnResult{Reply: reply, Emotion: in.Emotion}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, dontKnowWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "No saber también es una respuesta honesta. Démosle tiempo.",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, greetingWords) },
			respond: func(in TurnInput) TurnResult {
				reply := "Hola. Me alegra saludarte. ¿Cómo te encuentras hoy?"
				if in.Profile != nil && in.Profile.GreetingType == GreetingInformal {
					reply = "¡Qué onda! Aquí andamos. ¿Cómo vienes hoy?"
				}
				return TurnResult{Reply: reply, Emotion: in.Emotion}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, farewellWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Cuídate mucho. Aquí estaré cuando quieras volver.",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return containsAny(in.Text, silenceWords) },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:   "Entiendo. Me quedo en silencio contigo, sin prisa.",
					Emotion: in.Emotion,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return in.Submode == SubmodeReflexivo },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:      "Esa pregunta merece calma. ¿Qué significaría para ti encontrarle respuesta?",
					Emotion:    in.Emotion,
					VoiceLabel: VoiceReflexivo,
				}
			},
		},
		{
			match: func(in TurnInput) bool { return in.Submode == SubmodeCreativo },
			respond: func(in TurnInput) TurnResult {
				return TurnResult{
					Reply:      "Me encanta ese impulso creativo. Imaginemos algo juntos: ¿por dónde empezamos?",
					Emotion:    in.Emotion,
					VoiceLabel: VoiceCreativo,
				}
			},
		},
	}

	return evalRules(rules, in, func(in TurnInput) TurnResult {
		var reply string
		switch in.Emotion {
		case EmotionTriste:
			reply = "Te escucho. Lo que sientes es válido. No estás a solas con eso."
		case EmotionAnsioso:
			reply = "Vamos paso a paso. No tienes que resolverlo todo hoy."
		case EmotionContento:
			reply = "¡Sigamos con ese ánimo! Cuéntame más."
		default:
			reply = "Te leo. Cuéntame más, estoy contigo."
		}
		return TurnResult{Reply: reply, Emotion: in.Emotion}
	})
}
