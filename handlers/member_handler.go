package handlers

import (
	"errors"
	"net/http"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: ms,
	}
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	members, err := h.memberService.ListMembers(r.Context(), event)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	body := mason.NewBuilder(nil)
	body.AddNamespace()
	body.AddSelf(mason.MembersURL(event.Name), "This resource")
	body.AddControlSingleEvent(event)
	body.AddControlAddMember(event)
	for i := range members {
		member := &members[i]
		item := mason.NewBuilder(member.Serialize())
		item.AddSelf(mason.MemberURL(event.Name, member.Nickname), "Member "+member.Nickname)
		item.AddProfile(mason.MemberProfile, "Member profile")
		body.AddItem(item)
	}

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	event, ok := middleware.EventFromContext(r.Context())
	if !ok {
		serverErrorResponse(w, errors.New("event missing from request context"))
		return
	}

	var input services.AddMemberInput
	if err := readValidatedJSON(r, models.MemberSchema(), &input); err != nil {
		requestErrorResponse(w, err)
		return
	}

	member, err := h.memberService.AddMember(r.Context(), event, input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.MemberURL(event.Name, member.Nickname))
	w.WriteHeader(http.StatusCreated)
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
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

	body := mason.NewBuilder(member.Serialize())
	body.AddNamespace()
	body.AddSelf(mason.MemberURL(event.Name, member.Nickname), "This resource")
	body.AddProfile(mason.MemberProfile, "Member profile")
	body.AddControlAllMembers(event)
	body.AddControlMemberBets(event, member)
	body.AddControlBettingStatus(event, member)
	body.AddControlDeleteMember(event, member)

	if err := writeMason(w, http.StatusOK, body.Document, nil); err != nil {
		serverErrorResponse(w, err)
	}
}

func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
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

	if err := h.memberService.RemoveMember(r.Context(), member); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	w.Header().Set("Location", mason.MembersURL(event.Name))
	w.WriteHeader(http.StatusNoContent)
}
