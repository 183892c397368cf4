package handlers

import (
	"errors"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type BetHandler struct {
	betService services.BetService
}

func NewBetHandler(bs services.BetService) *BetHandler {
	return &BetHandler{
		betService: bs,
	}
}

// ListBets serves both the event-wide listing and the per-game one: when
// the route resolved a game, only that game's bets are returned.
func (h *BetHandler) ListBets(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	game, _ := middleware.GameFromContext(r.Context())

	bets, err := h.betService.ListBets(r.Context(), event, game)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	selfURL := mason.BetsURL(event.Name)
	if game != nil {
		selfURL = mason.GameBetsURL(event.Name, game.GameNbr)
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(selfURL, "This resource")
	body.AddControlSingleEvent(event)
	if game != nil {
		body.AddControlAllBets(event)
	} else {
		body.AddControlBettingStatus(event, nil)
	}
	for i := range bets {
		item := mason.NewBuilder(bets[i].Serialize())
		item.AddProfile(mason.BetProfile, "Bet profile")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *BetHandler) ListMemberBets(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	member, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("member missing from request context"))
		return
	}

	bets, err := h.betService.ListMemberBets(r.Context(), member)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.MemberBetsURL(event.Name, member.Nickname), "This resource")
	body.AddControlAllBets(event)
	body.AddControlAddBet(event, member)
	body.AddControlEditBet(event, member)
	for i := range bets {
		item := mason.NewBuilder(bets[i].Serialize())
		item.AddProfile(mason.BetProfile, "Bet profile")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

// AddBet records a new bet for the member. An existing bet for the same
// game is a conflict, updates must use PUT.
func (h *BetHandler) AddBet(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	member, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("member missing from request context"))
		return
	}

	var input services.BetInput
	if err := readValidatedJSON(r, models.BetSchema(false), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	if _, err := h.betService.AddBet(r.Context(), event, member, input); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.MemberBetsURL(event.Name, member.Nickname))
	w.WriteHeader(http.StatusCreated)
}

func (h *BetHandler) UpdateBet(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}
	member, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("member missing from request context"))
		return
	}

	var input services.BetInput
	if err := readValidatedJSON(r, models.BetSchema(false), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	if _, err := h.betService.UpdateBet(r.Context(), event, member, input); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.MemberBetsURL(event.Name, member.Nickname))
	w.WriteHeader(http.StatusNoContent)
}
