package bot

import (
	"strings"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// frenchMarkers are common French words whose presence flips detection to
// fr. Matching is substring-based, not word-boundary-based, so a marker
// inside an unrelated token counts too.
var frenchMarkers = []string{
	"bonjour", "merci", "oui", "non", "salut", "aide", "comment", "quoi",
	"où", "quand", "pourquoi", "combien", "quel", "quelle", "est-ce",
	"chambres", "prix", "disponible", "heure",
}

// Detect classifies text as French or English by counting marker-word
// occurrences. Any hit at all selects fr; otherwise en. Deterministic and
// total for any input, including the empty string.
func Detect(text string) models.Locale {
	lower := strings.ToLower(text)
	for _, w := range frenchMarkers {
		if strings.Contains(lower, w) {
			return models.LocaleFR
		}
	}
	return models.LocaleEN
}
