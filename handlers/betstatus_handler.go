package handlers

import (
	"errors"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/services"
)

type BetStatusHandler struct {
	statusService services.BetStatusService
}

func NewBetStatusHandler(bss services.BetStatusService) *BetStatusHandler {
	return &BetStatusHandler{
		statusService: bss,
	}
}

// GetLeaderboard returns every member with their total points, highest
// first.
func (h *BetStatusHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	standings, err := h.statusService.GetLeaderboard(r.Context(), event)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.BetStatusURL(event.Name), "This resource")
	body.AddProfile(mason.BetStatusProfile, "BetStatus profile")
	body.AddControlSingleEvent(event)
	for _, standing := range standings {
		item := mason.NewBuilder(map[string]any{
			"nickname": standing.Nickname,
			"points":   standing.Points,
		})
		item.AddSelf(mason.MemberBetStatusURL(event.Name, standing.Nickname),
			standing.Nickname+" bet status")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

// GetMemberStatus returns one member's points per bet, ordered by game
// number.
func (h *BetStatusHandler) GetMemberStatus(w http.ResponseWriter, r *http.Request) {
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

	outcomes, err := h.statusService.GetMemberStatus(r.Context(), event, member)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.MemberBetStatusURL(event.Name, member.Nickname), "This resource")
	body.AddProfile(mason.BetStatusProfile, "BetStatus profile")
	body.AddControlSingleEvent(event)
	body.AddControlBettingStatus(event, nil)
	for _, outcome := range outcomes {
		body.AddItem(mason.NewBuilder(map[string]any{
			"game_nbr": outcome.GameNbr,
			"points":   outcome.Points,
			"result":   outcome.Result,
			"bet":      outcome.Bet,
		}))
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}
