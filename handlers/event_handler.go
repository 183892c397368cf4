package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{
		eventService: es,
	}
}

// APIEntry redirects a fresh client to the event collection. Everything
// else is discoverable from there through controls.
func (h *EventHandler) APIEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", mason.EventsURL())
	w.WriteHeader(http.StatusOK)
}

func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.GetAllEvents(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.EventsURL(), "All events")
	body.AddControlAddEvent()
	for i := range events {
		event := &events[i]
		item := mason.NewBuilder(event.Serialize())
		item.AddSelf(mason.EventURL(event.Name), event.Name)
		item.AddProfile(mason.EventProfile, "Event profile")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	body := mason.NewBuilder(event.Serialize())
	body.AddNamespace()
	body.AddSelf(mason.EventURL(event.Name), "This resource")
	body.AddProfile(mason.EventProfile, "Event profile")
	body.AddControlAllEvents()
	body.AddControlAllGames(event)
	body.AddControlAllMembers(event)
	body.AddControlAllBets(event)
	body.AddControlBettingStatus(event, nil)
	body.AddControlDeleteEvent(event)

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input services.CreateEventInput
	if err := readValidatedJSON(r, models.EventSchema(), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.EventURL(event.Name))
	w.WriteHeader(http.StatusCreated)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	if err := h.eventService.DeleteEvent(r.Context(), event); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.EventsURL())
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) UploadEmblem(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request", fmt.Sprintf("failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("emblem")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request", "emblem file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		errorResponse(w, http.StatusBadRequest, "Invalid request", "content type is required for the emblem")
		return
	}

	updated, err := h.eventService.UploadEmblem(r.Context(), event, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(updated.Serialize())
	body.AddNamespace()
	body.AddSelf(mason.EventURL(updated.Name), "This resource")
	body.AddProfile(mason.EventProfile, "Event profile")
	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}
