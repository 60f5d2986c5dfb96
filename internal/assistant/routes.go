package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterRoutes mounts assistant endpoints on the given router.
func RegisterRoutes(r chi.Router, engine *Engine) {
	r.Post("/api/assistant/ask", askHandler(engine))
	r.Get("/api/assistant/sessions/{id}/messages", messagesHandler(engine))
	r.Get("/api/assistant/ws", wsHandler(engine))
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

func askHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !engine.Ready() {
			http.Error(w, "assistant not configured", http.StatusServiceUnavailable)
			return
		}
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Question == "" {
			http.Error(w, "question is required", http.StatusBadRequest)
			return
		}

		answer, err := engine.Ask(r.Context(), req.SessionID, "dashboard", req.Question)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, answer)
	}
}

func messagesHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := engine.Store().GetSession(r.Context(), id); err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		msgs, err := engine.Store().ListMessages(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if msgs == nil {
			msgs = []ChatMessage{}
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type      string `json:"type"` // "ask"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type      string   `json:"type"` // "response" or "error"
	SessionID string   `json:"session_id"`
	Content   string   `json:"content"`
	HTML      string   `json:"html,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

func wsHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("assistant: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendError(conn, "", "invalid message format")
				continue
			}
			if req.Content == "" {
				sendError(conn, req.SessionID, "content is required")
				continue
			}

			switch req.Type {
			case "ask":
				if !engine.Ready() {
					sendError(conn, req.SessionID, "assistant not configured")
					continue
				}
				answer, err := engine.Ask(r.Context(), req.SessionID, "dashboard", req.Content)
				if err != nil {
					sendError(conn, req.SessionID, "question failed: "+err.Error())
					continue
				}
				sendResponse(conn, wsResponse{
					Type:      "response",
					SessionID: answer.SessionID,
					Content:   answer.Content,
					HTML:      answer.HTML,
					Sources:   answer.Sources,
				})
			default:
				sendError(conn, req.SessionID, "unknown message type: "+req.Type)
			}
		}
	}
}

func sendResponse(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("assistant: websocket write: %v", err)
	}
}

func sendError(conn *websocket.Conn, sessionID, message string) {
	resp := wsResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("assistant: websocket write error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
