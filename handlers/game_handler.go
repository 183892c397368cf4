package handlers

import (
	"errors"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gs,
	}
}

func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	games, err := h.gameService.ListGames(r.Context(), event)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.GamesURL(event.Name), "This resource")
	body.AddControlSingleEvent(event)
	body.AddControlAddGame(event)
	for i := range games {
		game := &games[i]
		item := mason.NewBuilder(game.Serialize())
		item.AddSelf(mason.GameURL(event.Name, game.GameNbr),
			"Game #"+game.GameNbr+" "+game.HomeTeam+" - "+game.GuestTeam)
		item.AddProfile(mason.GameProfile, "Game profile")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

// AddGame creates a game. Goals should be -1 when the game has not been
// played yet.
func (h *GameHandler) AddGame(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	var input services.AddGameInput
	if err := readValidatedJSON(r, models.GameSchema(false), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	game, err := h.gameService.AddGame(r.Context(), event, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.GameURL(event.Name, game.GameNbr))
	w.WriteHeader(http.StatusCreated)
}

func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	game, ok := middleware.GameFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("game missing from request context"))
		return
	}

	body := mason.NewBuilder(game.Serialize())
	body.AddNamespace()
	body.AddSelf(mason.GameURL(event.Name, game.GameNbr), "This resource")
	body.AddProfile(mason.GameProfile, "Game profile")
	body.AddControlAllGames(event)
	body.AddControlGameBets(event, game)
	body.AddControlEditResult(event, game)
	body.AddControlDeleteGame(event, game)

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

// UpdateResult saves the game's goals, nothing else is editable.
func (h *GameHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	game, ok := middleware.GameFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("game missing from request context"))
		return
	}

	var input services.UpdateResultInput
	if err := readValidatedJSON(r, models.GameSchema(true), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	updated, err := h.gameService.UpdateResult(r.Context(), event, game, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.GameURL(event.Name, updated.GameNbr))
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	game, ok := middleware.GameFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("game missing from request context"))
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), game); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.GamesURL(event.Name))
	w.WriteHeader(http.StatusNoContent)
}
