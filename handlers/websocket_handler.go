package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/sportbet/sportbet-api/live"
	"github.com/sportbet/sportbet-api/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the deployed client origin before exposing
		// the hub outside the pool's own network.
		return true
	},
}

type WebSocketHandler struct {
	hub          *live.Hub
	eventService services.EventService
}

func NewWebSocketHandler(hub *live.Hub, es services.EventService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		eventService: es,
	}
}

// ServeWs subscribes the connection to the named event's room. The client
// receives result and leaderboard updates until it disconnects.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	eventName := chi.URLParam(r, "event")
	if eventName == "" {
		http.Error(w, "missing event name", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.GetEventByName(r.Context(), eventName)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			http.NotFound(w, r)
			return
		}
		serverErrorResponse(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade websocket connection",
			slog.String("event", event.Name), slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: event.Name,
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
