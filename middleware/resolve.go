package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type contextKey string

const (
	eventContextKey  contextKey = "event"
	memberContextKey contextKey = "member"
	gameContextKey   contextKey = "game"
)

// Resolver converts URL path segments into stored entities before the
// resource handlers run. An identifier that resolves to nothing is a 404,
// handlers never see unresolved names.
type Resolver struct {
	events  services.EventService
	members services.MemberService
	games   services.GameService
}

func NewResolver(events services.EventService, members services.MemberService, games services.GameService) *Resolver {
	return &Resolver{
		events:  events,
		members: members,
		games:   games,
	}
}

func urlParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// EventCtx resolves the {event} segment.
func (rs *Resolver) EventCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := rs.events.GetEventByName(r.Context(), urlParam(r, "event"))
		if err != nil {
			rs.reject(w, err, services.ErrEventNotFound)
			return
		}
		ctx := context.WithValue(r.Context(), eventContextKey, event)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MemberCtx resolves the {member} segment.
func (rs *Resolver) MemberCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		member, err := rs.members.GetMemberByNickname(r.Context(), urlParam(r, "member"))
		if err != nil {
			rs.reject(w, err, services.ErrMemberNotFound)
			return
		}
		ctx := context.WithValue(r.Context(), memberContextKey, member)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GameCtx resolves the {game} segment.
func (rs *Resolver) GameCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		game, err := rs.games.GetGameByNumber(r.Context(), urlParam(r, "game"))
		if err != nil {
			rs.reject(w, err, services.ErrGameNotFound)
			return
		}
		ctx := context.WithValue(r.Context(), gameContextKey, game)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (rs *Resolver) reject(w http.ResponseWriter, err, notFound error) {
	if errors.Is(err, notFound) {
		writeErrorDocument(w, http.StatusNotFound, "Not found", "the requested resource could not be found")
		return
	}
	writeErrorDocument(w, http.StatusInternalServerError, "Internal server error",
		"the server encountered a problem and could not process your request")
}

// EventFromContext returns the event resolved for this request.
func EventFromContext(ctx context.Context) (*models.Event, bool) {
	event, ok := ctx.Value(eventContextKey).(*models.Event)
	return event, ok
}

// MemberFromContext returns the member resolved for this request.
func MemberFromContext(ctx context.Context) (*models.Member, bool) {
	member, ok := ctx.Value(memberContextKey).(*models.Member)
	return member, ok
}

// GameFromContext returns the game resolved for this request.
func GameFromContext(ctx context.Context) (*models.Game, bool) {
	game, ok := ctx.Value(gameContextKey).(*models.Game)
	return game, ok
}
