package kivo

import "strings"

// Keyword groups shared across the response strategies. Matching is
// lower-cased and word-boundary aware, first group in the cascade wins.

var beliefWords = []string{
	"soy un fracaso", "no sirvo", "soy tonto", "soy tonta",
	"todo lo hago mal", "nadie me quiere", "soy inútil", "soy inutil",
	"no valgo nada",
}

var sadWords = []string{
	"triste", "deprimido", "deprimida", "desanimado", "desanimada",
	"bajoneado", "bajoneada", "quiero llorar", "muy mal",
}

var anxiousWords = []string{
	"ansioso", "ansiosa", "ansiedad", "nervioso", "nerviosa",
	"agobiado", "agobiada", "preocupado", "preocupada", "no puedo respirar",
}

var lonelyWords = []string{
	"me siento solo", "me siento sola", "estoy solo", "estoy sola",
	"nadie está conmigo", "nadie esta conmigo", "abandonado", "abandonada",
}

var angryWords = []string{
	"enojado", "enojada", "molesto", "molesta", "furioso", "furiosa",
	"harto", "harta", "rabia", "me hierve",
}

var fearWords = []string{
	"miedo", "asustado", "asustada", "pánico", "panico", "terror",
	"me aterra",
}

var boredWords = []string{
	"aburrido", "aburrida", "sin nada que hacer", "qué flojera",
	"que flojera",
}

var positiveWords = []string{
	"feliz", "contento", "contenta", "genial", "muy bien",
	"de maravilla", "excelente", "bien",
}

var sarcasticMarkers = []string{
	"supongo", "como sea", "qué más da", "que mas da",
	"si tú lo dices", "si tu lo dices",
}

var farewellWords = []string{
	"adiós", "adios", "chao", "hasta luego", "me voy", "nos vemos",
	"hasta mañana", "hasta manana",
}

var silenceWords = []string{
	"no quiero hablar", "silencio", "déjame tranquilo", "dejame tranquilo",
	"déjame tranquila", "dejame tranquila", "quiero paz",
}

var dontKnowWords = []string{"no sé", "no se", "ni idea"}

var greetingWords = append(append([]string{}, informalGreetings...), formalGreetings...)

// affirmativeTokens resolve a pending exercise offer. Matched per token so
// "sí" does not fire inside words like "siento".
var affirmativeTokens = map[string]bool{
	"dale": true, "sí": true, "si": true, "claro": true,
	"ok": true, "va": true, "bueno": true, "sale": true,
}

func isAffirmative(text string) bool {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,!¡¿?")
		if affirmativeTokens[tok] {
			return true
		}
	}
	return false
}
