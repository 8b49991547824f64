package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// fallbackResponses answer inputs that match no category.
var fallbackResponses = map[models.Locale]string{
	models.LocaleEN: "I'm sorry, I don't have information about that. 😔 You can ask me about: rooms, prices, check-in/out, WiFi, parking, food, taxi, or tourist places.",
	models.LocaleFR: "Désolé, je n'ai pas d'informations à ce sujet. 😔 Vous pouvez me poser des questions sur : chambres, prix, arrivée/départ, WiFi, parking, nourriture, taxi ou lieux touristiques.",
}

// ApologyReply is returned when response selection fails unexpectedly.
const ApologyReply = "Sorry, an error occurred. Please try again. / Désolé, une erreur s'est produite. Veuillez réessayer."

// TurnSaver persists a completed turn. Implemented by *db.Client.
type TurnSaver interface {
	SaveTurn(ctx context.Context, turn models.Turn) (models.Turn, error)
}

// Reply is the outcome of processing one user message.
type Reply struct {
	Text      string
	Locale    models.Locale
	Category  string
	SessionID string
	Timestamp time.Time
}

// Engine orchestrates detection, matching and persistence. It never returns
// an error: persistence failures are logged and swallowed so the caller
// always gets a reply, and any unexpected failure degrades to the bilingual
// apology.
type Engine struct {
	kb     KnowledgeBase
	store  TurnSaver
	logger *slog.Logger
}

// NewEngine creates an engine over a validated knowledge base. store may be
// nil, in which case turns are not persisted.
func NewEngine(kb KnowledgeBase, store TurnSaver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{kb: kb, store: store, logger: logger}
}

// Respond selects a reply for input and persists the turn. sessionID is an
// opaque caller-supplied grouping key and may be empty.
func (e *Engine) Respond(ctx context.Context, input, sessionID string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("response selection panicked", "panic", r, "input", input)
			reply = Reply{Text: ApologyReply, Locale: models.LocaleEN, SessionID: sessionID, Timestamp: time.Now()}
		}
	}()

	locale := Detect(input)
	normalized := Normalize(input)

	reply = Reply{Locale: locale, SessionID: sessionID, Timestamp: time.Now()}
	if entry := e.kb.Match(normalized); entry != nil {
		reply.Text = entry.Responses[locale]
		reply.Category = entry.Category
		e.logger.Info("matched category", "category", entry.Category, "locale", locale)
	} else {
		reply.Text = fallbackResponses[locale]
		e.logger.Warn("no category matched", "input", input, "locale", locale)
	}

	if e.store != nil {
		saved, err := e.store.SaveTurn(ctx, models.Turn{
			UserMessage: input,
			BotResponse: reply.Text,
			Locale:      locale,
			SessionID:   sessionID,
		})
		if err != nil {
			// At-most-effort durability: the reply still goes out.
			e.logger.Error("failed to persist turn", "error", err)
		} else {
			reply.Timestamp = saved.Timestamp
		}
	}

	return reply
}
