// Package bot implements the response-selection engine: text normalization,
// language detection, knowledge-base matching and reply persistence.
package bot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// KnowledgeEntry is one topic bucket: a category name, the trigger phrases
// that select it, and one response text per locale.
type KnowledgeEntry struct {
	Category  string                   `yaml:"category"`
	Triggers  []string                 `yaml:"triggers"`
	Responses map[models.Locale]string `yaml:"responses"`
}

// KnowledgeBase is an ordered list of entries. Slice order is load-bearing:
// the matcher returns the first entry whose trigger hits, so an earlier
// generic trigger pre-empts a later specific one.
type KnowledgeBase []KnowledgeEntry

// Validate fails fast on configuration errors: duplicate categories, entries
// without triggers, and entries missing a supported locale's response.
func (kb KnowledgeBase) Validate() error {
	if len(kb) == 0 {
		return fmt.Errorf("knowledge base is empty")
	}
	seen := make(map[string]bool, len(kb))
	for _, e := range kb {
		if e.Category == "" {
			return fmt.Errorf("knowledge entry with empty category")
		}
		if seen[e.Category] {
			return fmt.Errorf("duplicate knowledge category %q", e.Category)
		}
		seen[e.Category] = true
		if len(e.Triggers) == 0 {
			return fmt.Errorf("category %q has no triggers", e.Category)
		}
		for _, loc := range []models.Locale{models.LocaleEN, models.LocaleFR} {
			if e.Responses[loc] == "" {
				return fmt.Errorf("category %q missing %s response", e.Category, loc)
			}
		}
	}
	return nil
}

// LoadKnowledge returns the validated knowledge base. When path is empty the
// built-in base is used; otherwise the YAML file at path replaces it
// entirely (file order becomes match order).
func LoadKnowledge(path string) (KnowledgeBase, error) {
	if path == "" {
		if err := builtinKnowledge.Validate(); err != nil {
			return nil, fmt.Errorf("builtin knowledge base: %w", err)
		}
		return builtinKnowledge, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge file %s: %w", path, err)
	}
	return kb, nil
}

// builtinKnowledge holds the hotel FAQ topics. Declaration order is the
// match order.
var builtinKnowledge = KnowledgeBase{
	{
		Category: "greeting",
		Triggers: []string{"hello", "hi", "hey", "bonjour", "salut", "good morning", "good evening"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "Hello! 👋 How can I help you today?",
			models.LocaleFR: "Bonjour ! 👋 Comment puis-je vous aider ?",
		},
	},
	{
		Category: "name",
		Triggers: []string{"name", "who are you", "your name", "nom", "qui es-tu", "qui êtes-vous"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "My name is Hotel Assistant 🤖. I'm here to help you with hotel information.",
			models.LocaleFR: "Je m'appelle Assistant Hôtel 🤖. Je suis là pour vous aider avec les informations de l'hôtel.",
		},
	},
	{
		Category: "age",
		Triggers: []string{"old", "age", "âge", "quel âge"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "I'm a virtual assistant, so I don't have an age! 😊",
			models.LocaleFR: "Je suis un assistant virtuel, donc je n'ai pas d'âge ! 😊",
		},
	},
	{
		Category: "availability",
		Triggers: []string{"available", "rooms", "vacancy", "chambres", "disponible", "libre"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "Yes! 🛏️ We have 5 rooms available right now.",
			models.LocaleFR: "Oui ! 🛏️ Nous avons 5 chambres disponibles en ce moment.",
		},
	},
	{
		Category: "checkin",
		Triggers: []string{"check-in", "check in", "arrival", "arrivée", "heure d'arrivée"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "Check-in time is at 12:00 PM (noon) 🕐",
			models.LocaleFR: "L'heure d'arrivée est à 12h00 (midi) 🕐",
		},
	},
	{
		Category: "checkout",
		Triggers: []string{"check-out", "check out", "departure", "départ", "heure de départ"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "Check-out time is at 11:00 AM 🕚",
			models.LocaleFR: "L'heure de départ est à 11h00 🕚",
		},
	},
	{
		Category: "price",
		Triggers: []string{"price", "cost", "rent", "charge", "fee", "prix", "coût", "tarif", "combien"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "💰 Our room rate is ₹1,500 for 24 hours.",
			models.LocaleFR: "💰 Le tarif de notre chambre est de ₹1,500 pour 24 heures.",
		},
	},
	{
		Category: "tourism",
		Triggers: []string{"tourist", "attractions", "visit", "places", "see", "touristique", "visiter", "lieu"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "🗺️ Nearby attractions include: Taj Mahal, India Gate, Lotus Temple, and many more amazing places!",
			models.LocaleFR: "🗺️ Les attractions à proximité incluent : Taj Mahal, India Gate, Lotus Temple, et bien d'autres lieux magnifiques !",
		},
	},
	{
		Category: "cab",
		Triggers: []string{"cab", "taxi", "transport", "car"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "🚕 Yes, we provide taxi service at ₹12/KM.",
			models.LocaleFR: "🚕 Oui, nous fournissons un service de taxi à ₹12/KM.",
		},
	},
	{
		Category: "food",
		Triggers: []string{"food", "restaurant", "meal", "dining", "eat", "nourriture", "repas", "manger"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "🍽️ Yes, we have an excellent restaurant with diverse cuisine!",
			models.LocaleFR: "🍽️ Oui, nous avons un excellent restaurant avec une cuisine variée !",
		},
	},
	{
		Category: "wifi",
		Triggers: []string{"wifi", "internet", "connection"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "📶 Yes, free high-speed WiFi is available throughout the hotel.",
			models.LocaleFR: "📶 Oui, le WiFi haut débit gratuit est disponible dans tout l'hôtel.",
		},
	},
	{
		Category: "payment",
		Triggers: []string{"payment", "pay", "methods", "paiement", "payer", "moyens"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "💳 We accept UPI and Cash payments.",
			models.LocaleFR: "💳 Nous acceptons les paiements UPI et en espèces.",
		},
	},
	{
		Category: "cancellation",
		Triggers: []string{"cancel", "refund", "annulation", "remboursement"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "✅ We offer free cancellation!",
			models.LocaleFR: "✅ Nous offrons une annulation gratuite !",
		},
	},
	{
		Category: "parking",
		Triggers: []string{"parking", "park", "car park", "stationnement"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "🚗 Yes, free parking is available right in front of your room.",
			models.LocaleFR: "🚗 Oui, un parking gratuit est disponible juste devant votre chambre.",
		},
	},
	{
		Category: "goodbye",
		Triggers: []string{"bye", "goodbye", "see you", "au revoir", "à bientôt", "adieu"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "👋 Goodbye! Have a great day! Feel free to come back anytime.",
			models.LocaleFR: "👋 Au revoir ! Bonne journée ! N'hésitez pas à revenir quand vous voulez.",
		},
	},
	{
		Category: "thanks",
		Triggers: []string{"thank", "thanks", "merci", "thank you"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "😊 You're welcome! Happy to help!",
			models.LocaleFR: "😊 Je vous en prie ! Ravi de vous aider !",
		},
	},
	{
		Category: "help",
		Triggers: []string{"help", "aide", "assist", "support"},
		Responses: map[models.Locale]string{
			models.LocaleEN: "I can help you with: room availability, prices, check-in/out times, services (WiFi, parking, food, taxi), tourist places, and payment methods. What would you like to know?",
			models.LocaleFR: "Je peux vous aider avec : disponibilité des chambres, prix, horaires d'arrivée/départ, services (WiFi, parking, nourriture, taxi), lieux touristiques et moyens de paiement. Que voulez-vous savoir ?",
		},
	},
}
