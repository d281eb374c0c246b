package server

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ub-intelligence/dharmabot/models"
	"github.com/ub-intelligence/dharmabot/sessions"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketWriter serializes all writes to one connection.
type WebSocketWriter struct {
	Conn   *websocket.Conn
	Logger *log.Logger
	mu     sync.Mutex
}

func (w *WebSocketWriter) WriteResponse(resp interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(resp)
}

func (w *WebSocketWriter) WriteError(message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "error", "error": message})
}

// chatSocketRequest is one inbound frame on the chat socket.
type chatSocketRequest struct {
	Action        string                 `json:"action"` // "submit", "new_chat", "load_chat"
	SessionID     string                 `json:"sessionId,omitempty"`
	Text          string                 `json:"text,omitempty"`
	Files         []models.ProcessedFile `json:"files,omitempty"`
	SearchEnabled bool                   `json:"searchEnabled,omitempty"`
}

// chatSocketResponse is one outbound frame.
type chatSocketResponse struct {
	Type    string                    `json:"type"` // "message", "session"
	Message *models.AIResponseMessage `json:"message,omitempty"`
	Session *models.ChatSession       `json:"session,omitempty"`
}

// handleChatSocket runs a chat conversation over one WebSocket connection.
// Each submit frame is answered with the appended AI message and the
// updated session.
func (s *Server) handleChatSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	writer := &WebSocketWriter{Conn: conn, Logger: s.Logger}
	s.Logger.Printf("Chat socket connected from %s", conn.RemoteAddr())

	for {
		var req chatSocketRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.Logger.Printf("Chat socket read error: %v", err)
			}
			return
		}

		switch req.Action {
		case "submit":
			msg, err := s.Chat.SubmitQuery(c.Request.Context(), req.Text, req.Files, req.SearchEnabled)
			if err != nil {
				if errors.Is(err, sessions.ErrSessionDeleted) {
					// The response was dropped; nothing to deliver.
					continue
				}
				if writeErr := writer.WriteError(err.Error()); writeErr != nil {
					return
				}
				continue
			}
			resp := chatSocketResponse{Type: "message", Message: msg, Session: s.Chat.ActiveSession()}
			if err := writer.WriteResponse(resp); err != nil {
				return
			}

		case "new_chat":
			s.Chat.StartNewChat()
			if err := writer.WriteResponse(chatSocketResponse{Type: "session"}); err != nil {
				return
			}

		case "load_chat":
			if err := s.Chat.LoadChat(req.SessionID); err != nil {
				if writeErr := writer.WriteError(err.Error()); writeErr != nil {
					return
				}
				continue
			}
			resp := chatSocketResponse{Type: "session", Session: s.Chat.ActiveSession()}
			if err := writer.WriteResponse(resp); err != nil {
				return
			}

		default:
			if err := writer.WriteError("unknown action: " + req.Action); err != nil {
				return
			}
		}
	}
}
