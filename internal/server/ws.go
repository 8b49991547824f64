package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin chat page and the CLI client
	},
}

type wsMessage struct {
	Message string `json:"message"`
}

// handleWS runs a chat session over a websocket. Unlike plain /chat, the
// session id is stable for the lifetime of the connection: supplied via
// ?session_id= or generated once on upgrade.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.logger.Info("websocket session started", "session_id", sessionID)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", "error", err, "session_id", sessionID)
			}
			return
		}

		text := strings.TrimSpace(msg.Message)
		if text == "" {
			if err := conn.WriteJSON(map[string]string{
				"error": "Empty message",
				"reply": hintEmptyMessage,
			}); err != nil {
				return
			}
			continue
		}

		reply := s.engine.Respond(r.Context(), text, sessionID)
		if err := conn.WriteJSON(chatResponse{
			Reply:     reply.Text,
			Language:  string(reply.Locale),
			Timestamp: reply.Timestamp.Format(time.RFC3339),
			SessionID: sessionID,
		}); err != nil {
			s.logger.Warn("websocket write failed", "error", err, "session_id", sessionID)
			return
		}
	}
}
