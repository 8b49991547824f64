package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/hotelbot-go/internal/bot"
	"github.com/raphaelgruber/hotelbot-go/internal/db"
	"github.com/raphaelgruber/hotelbot-go/internal/server"
)

// testServer wires a real engine and a temp SQLite store behind httptest.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := db.NewClient(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.InitSchema(t.Context()))

	kb, err := bot.LoadKnowledge("")
	require.NoError(t, err)

	engine := bot.NewEngine(kb, store, logger)
	ts := httptest.NewServer(server.New(engine, store, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, ts *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, ts *httptest.Server, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestChatGreeting(t *testing.T) {
	ts := testServer(t)

	resp, body := postChat(t, ts, `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello! 👋 How can I help you today?", body["reply"])
	assert.Equal(t, "en", body["language"])
	assert.NotEmpty(t, body["session_id"], "server must mint a session id when the caller sends none")

	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)
}

func TestChatFrench(t *testing.T) {
	ts := testServer(t)

	resp, body := postChat(t, ts, `{"message": "Combien coûte une chambre ?"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fr", body["language"])
	assert.Contains(t, body["reply"], "1,500")
}

func TestChatKeepsCallerSession(t *testing.T) {
	ts := testServer(t)

	_, body := postChat(t, ts, `{"message": "hello", "session_id": "my-session"}`)
	assert.Equal(t, "my-session", body["session_id"])
}

func TestChatMissingMessage(t *testing.T) {
	ts := testServer(t)

	for _, payload := range []string{`{}`, `not json at all`, ``} {
		resp, body := postChat(t, ts, payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)
		assert.Equal(t, "Message is required", body["error"])
		assert.Contains(t, body["reply"], "Veuillez envoyer un message")
	}
}

func TestChatEmptyMessage(t *testing.T) {
	ts := testServer(t)

	for _, payload := range []string{`{"message": ""}`, `{"message": "   "}`} {
		resp, body := postChat(t, ts, payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)
		assert.Equal(t, "Empty message", body["error"])
	}
}

func TestHistoryEndpoint(t *testing.T) {
	ts := testServer(t)

	postChat(t, ts, `{"message": "hello"}`)
	postChat(t, ts, `{"message": "is wifi free"}`)

	resp, body := getJSON(t, ts, "/api/history?limit=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])

	history := body["history"].([]any)
	require.Len(t, history, 2)
	newest := history[0].(map[string]any)
	assert.Equal(t, "is wifi free", newest["user_message"])
	assert.Equal(t, "en", newest["language"])
}

func TestStatsEndpoint(t *testing.T) {
	ts := testServer(t)

	postChat(t, ts, `{"message": "hello"}`)
	postChat(t, ts, `{"message": "bonjour"}`)

	resp, body := getJSON(t, ts, "/api/stats")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := body["statistics"].(map[string]any)
	assert.Equal(t, float64(2), stats["total_messages"])

	byLang := stats["messages_by_language"].(map[string]any)
	assert.Equal(t, float64(1), byLang["en"])
	assert.Equal(t, float64(1), byLang["fr"])
}

func TestSearchEndpoint(t *testing.T) {
	ts := testServer(t)

	postChat(t, ts, `{"message": "is wifi free"}`)
	postChat(t, ts, `{"message": "hello"}`)

	resp, body := getJSON(t, ts, "/api/search?q=wifi")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "wifi", body["keyword"])
	assert.Equal(t, float64(1), body["count"])
}

func TestSearchRequiresKeyword(t *testing.T) {
	ts := testServer(t)

	resp, body := getJSON(t, ts, "/api/search")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Search keyword is required", body["error"])
}

func TestPurgeEndpoint(t *testing.T) {
	ts := testServer(t)

	postChat(t, ts, `{"message": "hello"}`)

	resp, err := http.Post(ts.URL+"/api/purge?days=30", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["deleted"], "fresh turns are inside the window")
	assert.Equal(t, float64(30), body["days"])
}

func TestHealthEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(data))
}

func TestEmbeddedChatPage(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}

func TestWebsocketChat(t *testing.T) {
	ts := testServer(t)

	wsURL := strings.Replace(ts.URL, "http://", "ws://", 1) + "/ws?session_id=ws-session"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "hello"}))

	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "Hello! 👋 How can I help you today?", reply["reply"])
	assert.Equal(t, "ws-session", reply["session_id"])

	// An empty message gets an error frame but keeps the connection open.
	require.NoError(t, conn.WriteJSON(map[string]string{"message": "  "}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "Empty message", reply["error"])

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "merci"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "fr", reply["language"])
}
