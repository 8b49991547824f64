package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// fakeStore records saved turns and can be told to fail.
type fakeStore struct {
	turns []models.Turn
	err   error
}

func (f *fakeStore) SaveTurn(_ context.Context, turn models.Turn) (models.Turn, error) {
	if f.err != nil {
		return models.Turn{}, f.err
	}
	turn.ID = int64(len(f.turns) + 1)
	turn.Timestamp = time.Now().UTC()
	f.turns = append(f.turns, turn)
	return turn, nil
}

func testEngine(t *testing.T, store TurnSaver) *Engine {
	t.Helper()
	kb, err := LoadKnowledge("")
	require.NoError(t, err)
	return NewEngine(kb, store, nil)
}

func TestRespondEnglishGreeting(t *testing.T) {
	store := &fakeStore{}
	e := testEngine(t, store)

	reply := e.Respond(context.Background(), "hello", "s-1")

	assert.Equal(t, models.LocaleEN, reply.Locale)
	assert.Equal(t, "greeting", reply.Category)
	assert.Equal(t, "Hello! 👋 How can I help you today?", reply.Text)

	require.Len(t, store.turns, 1)
	assert.Equal(t, "hello", store.turns[0].UserMessage)
	assert.Equal(t, reply.Text, store.turns[0].BotResponse)
	assert.Equal(t, models.LocaleEN, store.turns[0].Locale)
	assert.Equal(t, "s-1", store.turns[0].SessionID)
}

func TestRespondFrenchPrice(t *testing.T) {
	store := &fakeStore{}
	e := testEngine(t, store)

	reply := e.Respond(context.Background(), "Combien coûte une chambre ?", "")

	assert.Equal(t, models.LocaleFR, reply.Locale)
	assert.Equal(t, "price", reply.Category)
	assert.Equal(t, "💰 Le tarif de notre chambre est de ₹1,500 pour 24 heures.", reply.Text)

	require.Len(t, store.turns, 1)
	assert.Equal(t, models.LocaleFR, store.turns[0].Locale)
}

// With a greeting word present, declaration order routes the whole input to
// greeting even though a price trigger also matches.
func TestRespondGreetingPreemptsPrice(t *testing.T) {
	e := testEngine(t, &fakeStore{})

	reply := e.Respond(context.Background(), "Bonjour, combien coûte une chambre ?", "")

	assert.Equal(t, models.LocaleFR, reply.Locale)
	assert.Equal(t, "greeting", reply.Category)
	assert.Equal(t, "Bonjour ! 👋 Comment puis-je vous aider ?", reply.Text)
}

func TestRespondFallback(t *testing.T) {
	e := testEngine(t, &fakeStore{})

	reply := e.Respond(context.Background(), "xyzzy unknown gibberish", "")

	assert.Equal(t, models.LocaleEN, reply.Locale)
	assert.Empty(t, reply.Category)
	assert.Equal(t, fallbackResponses[models.LocaleEN], reply.Text)
}

func TestRespondFallbackFrench(t *testing.T) {
	e := testEngine(t, &fakeStore{})

	// "pourquoi" is a French marker but matches no category.
	reply := e.Respond(context.Background(), "pourquoi pas", "")

	assert.Equal(t, models.LocaleFR, reply.Locale)
	assert.Equal(t, fallbackResponses[models.LocaleFR], reply.Text)
}

// Persistence failures are logged and swallowed; the caller still gets the
// real reply.
func TestRespondStoreFailureSwallowed(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	e := testEngine(t, store)

	reply := e.Respond(context.Background(), "hello", "")

	assert.Equal(t, "Hello! 👋 How can I help you today?", reply.Text)
	assert.Equal(t, models.LocaleEN, reply.Locale)
}

func TestRespondNilStore(t *testing.T) {
	e := testEngine(t, nil)

	reply := e.Respond(context.Background(), "merci", "")
	assert.Equal(t, "thanks", reply.Category)
	assert.Equal(t, models.LocaleFR, reply.Locale)
}

// Every trigger of every category must produce that category's localized
// response when sent through the full pipeline.
func TestRespondAllTriggersRoundTrip(t *testing.T) {
	kb, err := LoadKnowledge("")
	require.NoError(t, err)
	e := NewEngine(kb, nil, nil)

	for _, entry := range kb {
		for _, trigger := range entry.Triggers {
			reply := e.Respond(context.Background(), trigger, "")
			// The trigger alone may hit an earlier category (declaration
			// order), so only assert when this entry is the first match.
			first := kb.Match(Normalize(trigger))
			require.NotNil(t, first)
			assert.Equal(t, first.Responses[reply.Locale], reply.Text,
				"trigger %q of %s", trigger, entry.Category)
		}
	}
}
