package kivo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Coarse input modes. Mode classifies the topic of a message, not the persona
// voice that answers it.
const (
	ModeTecnico   = "tecnico"
	ModeEmocional = "emocional"
	ModeNeutro    = "neutro"
)

// Finer submodes layered on top of the mode.
const (
	SubmodeReflexivo = "reflexivo"
	SubmodeCreativo  = "creativo"
)

// Time-of-day buckets.
const (
	BucketNocheDescanso = "noche_descanso"
	BucketManana        = "mañana"
	BucketTarde         = "tarde"
	BucketNoche         = "noche"
)

var technicalWords = []string{
	"puerto", "firewall", "servidor", "deploy", "docker", "backend",
	"frontend", "api", "endpoint", "base de datos", "código", "codigo",
	"compilar", "script", "terminal", "función", "funcion", "variable",
	"bug", "error 500", "query", "commit", "repositorio",
}

var emotionalVocabulary = []string{
	"triste", "ansioso", "ansiosa", "ansiedad", "deprimido", "deprimida",
	"solo", "sola", "miedo", "enojado", "enojada", "llorar", "angustia",
	"agobiado", "agobiada", "feliz", "contento", "contenta", "aburrido",
	"aburrida", "me siento",
}

var reflectiveWords = []string{
	"sentido de la vida", "por qué existo", "por que existo", "quién soy",
	"quien soy", "propósito", "proposito", "reflexionar", "el sentido de",
	"qué significa", "que significa", "la muerte", "el destino",
}

var creativeWords = []string{
	"imagina", "imaginemos", "inventar", "inventemos", "una historia",
	"un cuento", "un poema", "dibujar", "crear algo", "idea loca",
}

// containsAny reports whether any keyword occurs in text on word boundaries.
// Entries may be multi-word phrases. A hit inside a longer word does not
// count, so "api" never fires inside "rapido" and "bien" never fires inside
// "tambien".
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if containsWord(text, w) {
			return true
		}
	}
	return false
}

func containsWord(text string, word string) bool {
	for from := 0; from+len(word) <= len(text); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		i += from
		if !letterBefore(text, i) && !letterAt(text, i+len(word)) {
			return true
		}
		from = i + 1
	}
	return false
}

func letterBefore(text string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsLetter(r)
}

func letterAt(text string, i int) bool {
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}

// ClassifyMode derives the coarse topic of a message. Technical vocabulary
// takes priority over emotional vocabulary when both match.
func ClassifyMode(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, technicalWords) {
		return ModeTecnico
	}
	if containsAny(lower, emotionalVocabulary) {
		return ModeEmocional
	}
	return ModeNeutro
}

// ClassifySubmode detects a reflective or creative undertone. Reflective takes
// priority. Returns "" when neither matches.
func ClassifySubmode(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, reflectiveWords) {
		return SubmodeReflexivo
	}
	if containsAny(lower, creativeWords) {
		return SubmodeCreativo
	}
	return ""
}

// TimeOfDayBucket maps an hour (0-23) to its conversational time slot.
func TimeOfDayBucket(hour int) string {
	switch {
	case hour >= 22 || hour < 6:
		return BucketNocheDescanso
	case hour >= 6 && hour < 12:
		return BucketManana
	case hour >= 12 && hour < 18:
		return BucketTarde
	default:
		return BucketNoche
	}
}

// MoodClimate scans the most recent emotions (oldest first) and returns the
// first value whose running count reaches 3, or "" when no emotion dominates.
// Only the last 5 entries are considered.
func MoodClimate(emotions []string) string {
	if len(emotions) > 5 {
		emotions = emotions[len(emotions)-5:]
	}
	counts := map[string]int{}
	for _, e := range emotions {
		counts[e]++
		if counts[e] >= 3 {
			return e
		}
	}
	return ""
}
