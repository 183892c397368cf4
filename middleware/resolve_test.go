package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/services"
)

type mockEventService struct {
	getByNameFunc func(ctx context.Context, name string) (*models.Event, error)
}

func (m *mockEventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	panic("not used")
}

func (m *mockEventService) GetEventByName(ctx context.Context, name string) (*models.Event, error) {
	return m.getByNameFunc(ctx, name)
}

func (m *mockEventService) CreateEvent(ctx context.Context, input services.CreateEventInput) (*models.Event, error) {
	panic("not used")
}

func (m *mockEventService) DeleteEvent(ctx context.Context, event *models.Event) error {
	panic("not used")
}

func (m *mockEventService) UploadEmblem(ctx context.Context, event *models.Event, file io.Reader, contentType string) (*models.Event, error) {
	panic("not used")
}

type mockMemberService struct {
	getByNicknameFunc func(ctx context.Context, nickname string) (*models.Member, error)
}

func (m *mockMemberService) ListMembers(ctx context.Context, event *models.Event) ([]models.Member, error) {
	panic("not used")
}

func (m *mockMemberService) GetMemberByNickname(ctx context.Context, nickname string) (*models.Member, error) {
	return m.getByNicknameFunc(ctx, nickname)
}

func (m *mockMemberService) AddMember(ctx context.Context, event *models.Event, input services.AddMemberInput) (*models.Member, error) {
	panic("not used")
}

func (m *mockMemberService) RemoveMember(ctx context.Context, member *models.Member) error {
	panic("not used")
}

type mockGameService struct {
	getByNumberFunc func(ctx context.Context, gameNbr string) (*models.Game, error)
}

func (m *mockGameService) ListGames(ctx context.Context, event *models.Event) ([]models.Game, error) {
	panic("not used")
}

func (m *mockGameService) GetGameByNumber(ctx context.Context, gameNbr string) (*models.Game, error) {
	return m.getByNumberFunc(ctx, gameNbr)
}

func (m *mockGameService) AddGame(ctx context.Context, event *models.Event, input services.AddGameInput) (*models.Game, error) {
	panic("not used")
}

func (m *mockGameService) UpdateResult(ctx context.Context, event *models.Event, game *models.Game, input services.UpdateResultInput) (*models.Game, error) {
	panic("not used")
}

func (m *mockGameService) DeleteGame(ctx context.Context, game *models.Game) error {
	panic("not used")
}

// routeRequest runs a request through a chi router so URL params resolve.
func routeRequest(t *testing.T, pattern, target string, mw func(http.Handler) http.Handler, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	router.With(mw).Get(pattern, next.ServeHTTP)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestEventCtxInjectsResolvedEvent(t *testing.T) {
	t.Parallel()

	stored := &models.Event{ID: 1, Name: "Bandy-WM-2026"}
	resolver := NewResolver(&mockEventService{
		getByNameFunc: func(ctx context.Context, name string) (*models.Event, error) {
			require.Equal(t, "Bandy-WM-2026", name)
			return stored, nil
		},
	}, nil, nil)

	var got *models.Event
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, ok := EventFromContext(r.Context())
		require.True(t, ok)
		got = event
	})

	rr := routeRequest(t, "/{event}/", "/Bandy-WM-2026/", resolver.EventCtx, next)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, stored, got)
}

func TestEventCtxUnknownEventIs404(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&mockEventService{
		getByNameFunc: func(ctx context.Context, name string) (*models.Event, error) {
			return nil, services.ErrEventNotFound
		},
	}, nil, nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := routeRequest(t, "/{event}/", "/nope/", resolver.EventCtx, next)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, called)
}

func TestEventCtxLookupFailureIs500(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&mockEventService{
		getByNameFunc: func(ctx context.Context, name string) (*models.Event, error) {
			return nil, errors.New("connection refused")
		},
	}, nil, nil)

	rr := routeRequest(t, "/{event}/", "/any/", resolver.EventCtx,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMemberCtxInjectsResolvedMember(t *testing.T) {
	t.Parallel()

	stored := &models.Member{ID: 7, Nickname: "nick"}
	resolver := NewResolver(nil, &mockMemberService{
		getByNicknameFunc: func(ctx context.Context, nickname string) (*models.Member, error) {
			require.Equal(t, "nick", nickname)
			return stored, nil
		},
	}, nil)

	var got *models.Member
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		member, ok := MemberFromContext(r.Context())
		require.True(t, ok)
		got = member
	})

	rr := routeRequest(t, "/members/{member}/", "/members/nick/", resolver.MemberCtx, next)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, stored, got)
}

func TestGameCtxUnknownGameIs404(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil, nil, &mockGameService{
		getByNumberFunc: func(ctx context.Context, gameNbr string) (*models.Game, error) {
			return nil, services.ErrGameNotFound
		},
	})

	rr := routeRequest(t, "/games/{game}/", "/games/G99/", resolver.GameCtx,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestContextGettersWithoutValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := EventFromContext(ctx)
	assert.False(t, ok)
	_, ok = MemberFromContext(ctx)
	assert.False(t, ok)
	_, ok = GameFromContext(ctx)
	assert.False(t, ok)
}
