package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raphaelgruber/hotelbot-go/internal/models"
)

// maxReplyLogLen bounds reply text in log lines.
const maxReplyLogLen = 50

// Bilingual hints for rejected requests.
const (
	hintMissingMessage = "Please send a message. / Veuillez envoyer un message."
	hintEmptyMessage   = "Please send a non-empty message. / Veuillez envoyer un message non vide."
)

type chatRequest struct {
	Message   *string `json:"message"`
	SessionID string  `json:"session_id"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		s.logger.Warn("invalid chat request: message missing")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Message is required",
			"reply": hintMissingMessage,
		})
		return
	}

	message := strings.TrimSpace(*req.Message)
	if message == "" {
		s.logger.Warn("empty chat message received")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Empty message",
			"reply": hintEmptyMessage,
		})
		return
	}

	// A request without a session id gets a fresh one. Turns only group by
	// session when the caller remembers and resends the id.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := s.engine.Respond(r.Context(), message, sessionID)
	s.logger.Info("reply sent", "reply", truncate(reply.Text, maxReplyLogLen), "locale", reply.Locale)

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:     reply.Text,
		Language:  string(reply.Locale),
		Timestamp: reply.Timestamp.Format(time.RFC3339),
		SessionID: reply.SessionID,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultHistoryLimit)

	history, err := s.store.History(r.Context(), limit)
	if err != nil {
		// Reads degrade to an empty result instead of failing the request.
		s.logger.Error("failed to retrieve history", "error", err)
		history = []models.Turn{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history": history,
		"count":   len(history),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Statistics(r.Context())
	if err != nil {
		s.logger.Error("failed to retrieve statistics", "error", err)
		stats = models.Statistics{
			ByLocale:    map[models.Locale]int{},
			TopMessages: []models.MessageCount{},
		}
	}
	if stats.TopMessages == nil {
		stats.TopMessages = []models.MessageCount{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"statistics":   stats,
		"generated_at": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Search keyword is required",
		})
		return
	}
	limit := queryInt(r, "limit", defaultSearchLimit)

	results, err := s.store.Search(r.Context(), keyword, limit)
	if err != nil {
		s.logger.Error("search failed", "error", err, "keyword", keyword)
		results = []models.Turn{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
		"keyword": keyword,
	})
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", defaultPurgeDays)

	deleted, err := s.store.PurgeOlderThan(r.Context(), days)
	if err != nil {
		s.logger.Error("purge failed", "error", err, "days", days)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Purge failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": deleted,
		"days":    days,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// queryInt reads a positive integer query parameter, falling back to
// defaultVal when absent or invalid.
func queryInt(r *http.Request, key string, defaultVal int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
