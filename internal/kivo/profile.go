package kivo

import (
	"strings"
	"time"

	"kivo-assistant/internal/domain/entities"
)

// Greeting and gratitude styles learned from the user.
const (
	GreetingFormal     = "formal"
	GreetingInformal   = "informal"
	GratitudeSimple    = "simple"
	GratitudeExpresivo = "expresivo"
)

var slangWords = []string{
	"wey", "bro", "chido", "neta", "carnal", "banda", "chamba",
	"simón", "simon", "qué pedo", "que pedo", "va que va",
}

var informalGreetings = []string{
	"qué onda", "que onda", "holi", "buenas", "hey", "ey",
	"qué tal", "que tal", "qué rollo", "que rollo",
}

var formalGreetings = []string{
	"hola", "buenos días", "buenos dias", "buenas tardes",
	"buenas noches", "saludos",
}

var emphaticThanks = []string{
	"mil gracias", "muchísimas gracias", "muchisimas gracias",
	"gracias de verdad", "te pasaste", "no sé cómo agradecerte",
	"no se como agradecerte",
}

var plainThanks = []string{"gracias"}

// UpdateStyleProfile mutates the profile in place from one raw message.
// Slang accumulation is monotonic and idempotent; PrefersShort is recomputed
// on every turn; greeting/gratitude are only overwritten on a match.
// Emojis stays true forever once observed.
func UpdateStyleProfile(p *entities.StyleProfile, rawInput string) {
	lower := strings.ToLower(rawInput)

	if hasEmoji(rawInput) {
		p.Emojis = true
	}

	for _, w := range slangWords {
		if containsWord(lower, w) && !p.HasSlang(w) {
			p.Slang = append(p.Slang, w)
		}
	}

	p.PrefersShort = len(strings.Fields(rawInput)) <= 5

	if containsAny(lower, informalGreetings) {
		p.GreetingType = GreetingInformal
	} else if containsAny(lower, formalGreetings) {
		p.GreetingType = GreetingFormal
	}

	if containsAny(lower, emphaticThanks) {
		p.GratitudeType = GratitudeExpresivo
	} else if containsAny(lower, plainThanks) {
		p.GratitudeType = GratitudeSimple
	}

	p.UpdatedAt = time.Now()
}

// hasEmoji reports whether the input contains an emoticon codepoint
// (U+1F600 to U+1F64F).
func hasEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F600 && r <= 0x1F64F {
			return true
		}
	}
	return false
}
