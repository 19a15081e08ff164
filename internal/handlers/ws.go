package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alfagnish/users-gateway/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Allow all origins (CORS is handled at the middleware level).
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler answers projection queries over a WebSocket connection.
type WSHandler struct {
	table  *users.Table
	logger *zap.Logger
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(table *users.Table, logger *zap.Logger) *WSHandler {
	return &WSHandler{table: table, logger: logger}
}

// Routes registers the WebSocket endpoint.
func (h *WSHandler) Routes(r chi.Router) {
	r.Get("/ws", h.HandleWS)
}

// wsQuery is the JSON structure expected from WebSocket clients.
type wsQuery struct {
	Projection users.Projection `json:"projection"`
}

// wsReply is the JSON structure sent back to WebSocket clients.
type wsReply struct {
	Type       string           `json:"type"`
	Projection users.Projection `json:"projection,omitempty"`
	Data       interface{}      `json:"data,omitempty"`
	Content    string           `json:"content,omitempty"`
}

// HandleWS upgrades the HTTP connection to a WebSocket, then answers each
// query message with exactly one reply frame until the client disconnects.
func (h *WSHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var q wsQuery
		if err := json.Unmarshal(raw, &q); err != nil {
			if !h.writeReply(conn, wsReply{Type: "error", Content: "invalid JSON message"}) {
				return
			}
			continue
		}

		data, err := h.table.Project(q.Projection)
		if err != nil {
			if !h.writeReply(conn, wsReply{Type: "error", Content: err.Error()}) {
				return
			}
			continue
		}

		if !h.writeReply(conn, wsReply{Type: "result", Projection: q.Projection, Data: data}) {
			return
		}
	}
}

// writeReply sends one JSON frame and reports whether the connection is
// still usable.
func (h *WSHandler) writeReply(conn *websocket.Conn, reply wsReply) bool {
	if err := conn.WriteJSON(reply); err != nil {
		h.logger.Warn("websocket write error", zap.Error(err))
		return false
	}
	return true
}
