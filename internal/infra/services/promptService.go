package services

import (
	"fmt"
	"strings"

	"kivo-assistant/internal/domain/entities"
	"kivo-assistant/internal/kivo"
)

// PromptService generates the system prompt that frames every LLM query with
// what the rule layer knows about the user: topic mode, submode and learned
// writing style.
type PromptService struct{}

func NewPromptService() *PromptService {
	return &PromptService{}
}

func (ps *PromptService) BuildSystemPrompt(profile entities.StyleProfile, message string) string {
	var lines []string
	lines = append(lines, "Eres Kivo, un asistente conversacional cálido y cercano. Responde siempre en español.")

	switch kivo.ClassifyMode(message) {
	case kivo.ModeTecnico:
		lines = append(lines, "El mensaje es técnico: responde con precisión de ingeniería, sin rodeos.")
	case kivo.ModeEmocional:
		lines = append(lines, "El mensaje tiene carga emocional: valida lo que siente la persona antes de sugerir nada.")
	}

	switch kivo.ClassifySubmode(message) {
	case kivo.SubmodeReflexivo:
		lines = append(lines, "La persona está en un momento reflexivo: acompaña la pregunta, no la cierres.")
	case kivo.SubmodeCreativo:
		lines = append(lines, "La persona busca crear algo: propone ideas y juega con ellas.")
	}

	if profile.PrefersShort {
		lines = append(lines, "La persona prefiere mensajes cortos: responde en una o dos frases.")
	}
	if profile.Emojis {
		lines = append(lines, "Puedes usar algún emoji ocasional.")
	}
	if profile.GreetingType == kivo.GreetingInformal || len(profile.Slang) > 0 {
		lines = append(lines, fmt.Sprintf("Tono informal, de confianza. Jerga conocida del usuario: %s.", strings.Join(profile.Slang, ", ")))
	}

	return strings.Join(lines, "\n")
}
