package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sportbet/sportbet-api/handlers"
	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/routes"
	"github.com/sportbet/sportbet-api/scoring"
	"github.com/sportbet/sportbet-api/services"
)

// Mock services in the function-field style: a test sets only the
// functions its route actually reaches.

type mockAuthService struct {
	validateFunc func(ctx context.Context, rawKey string, admin bool) error
}

func (m *mockAuthService) ValidateKey(ctx context.Context, rawKey string, admin bool) error {
	if m.validateFunc == nil {
		return nil
	}
	return m.validateFunc(ctx, rawKey, admin)
}

func (m *mockAuthService) GenerateKey(ctx context.Context, admin bool, eventID *int) (string, error) {
	panic("GenerateKey not expected")
}

type mockEventService struct {
	getAllFunc    func(ctx context.Context) ([]models.Event, error)
	getByNameFunc func(ctx context.Context, name string) (*models.Event, error)
	createFunc    func(ctx context.Context, input services.CreateEventInput) (*models.Event, error)
	deleteFunc    func(ctx context.Context, event *models.Event) error
	uploadFunc    func(ctx context.Context, event *models.Event, file io.Reader, contentType string) (*models.Event, error)
}

func (m *mockEventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return m.getAllFunc(ctx)
}

func (m *mockEventService) GetEventByName(ctx context.Context, name string) (*models.Event, error) {
	return m.getByNameFunc(ctx, name)
}

func (m *mockEventService) CreateEvent(ctx context.Context, input services.CreateEventInput) (*models.Event, error) {
	return m.createFunc(ctx, input)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, event *models.Event) error {
	return m.deleteFunc(ctx, event)
}

func (m *mockEventService) UploadEmblem(ctx context.Context, event *models.Event, file io.Reader, contentType string) (*models.Event, error) {
	return m.uploadFunc(ctx, event, file, contentType)
}

type mockMemberService struct {
	listFunc          func(ctx context.Context, event *models.Event) ([]models.Member, error)
	getByNicknameFunc func(ctx context.Context, nickname string) (*models.Member, error)
	addFunc           func(ctx context.Context, event *models.Event, input services.AddMemberInput) (*models.Member, error)
	removeFunc        func(ctx context.Context, member *models.Member) error
}

func (m *mockMemberService) ListMembers(ctx context.Context, event *models.Event) ([]models.Member, error) {
	return m.listFunc(ctx, event)
}

func (m *mockMemberService) GetMemberByNickname(ctx context.Context, nickname string) (*models.Member, error) {
	return m.getByNicknameFunc(ctx, nickname)
}

func (m *mockMemberService) AddMember(ctx context.Context, event *models.Event, input services.AddMemberInput) (*models.Member, error) {
	return m.addFunc(ctx, event, input)
}

func (m *mockMemberService) RemoveMember(ctx context.Context, member *models.Member) error {
	return m.removeFunc(ctx, member)
}

type mockGameService struct {
	listFunc         func(ctx context.Context, event *models.Event) ([]models.Game, error)
	getByNumberFunc  func(ctx context.Context, gameNbr string) (*models.Game, error)
	addFunc          func(ctx context.Context, event *models.Event, input services.AddGameInput) (*models.Game, error)
	updateResultFunc func(ctx context.Context, event *models.Event, game *models.Game, input services.UpdateResultInput) (*models.Game, error)
	deleteFunc       func(ctx context.Context, game *models.Game) error
}

func (m *mockGameService) ListGames(ctx context.Context, event *models.Event) ([]models.Game, error) {
	return m.listFunc(ctx, event)
}

func (m *mockGameService) GetGameByNumber(ctx context.Context, gameNbr string) (*models.Game, error) {
	return m.getByNumberFunc(ctx, gameNbr)
}

func (m *mockGameService) AddGame(ctx context.Context, event *models.Event, input services.AddGameInput) (*models.Game, error) {
	return m.addFunc(ctx, event, input)
}

func (m *mockGameService) UpdateResult(ctx context.Context, event *models.Event, game *models.Game, input services.UpdateResultInput) (*models.Game, error) {
	return m.updateResultFunc(ctx, event, game, input)
}

func (m *mockGameService) DeleteGame(ctx context.Context, game *models.Game) error {
	return m.deleteFunc(ctx, game)
}

type mockBetService struct {
	listFunc       func(ctx context.Context, event *models.Event, game *models.Game) ([]models.Bet, error)
	listMemberFunc func(ctx context.Context, member *models.Member) ([]models.Bet, error)
	addFunc        func(ctx context.Context, event *models.Event, member *models.Member, input services.BetInput) (*models.Bet, error)
	updateFunc     func(ctx context.Context, event *models.Event, member *models.Member, input services.BetInput) (*models.Bet, error)
}

func (m *mockBetService) ListBets(ctx context.Context, event *models.Event, game *models.Game) ([]models.Bet, error) {
	return m.listFunc(ctx, event, game)
}

func (m *mockBetService) ListMemberBets(ctx context.Context, member *models.Member) ([]models.Bet, error) {
	return m.listMemberFunc(ctx, member)
}

func (m *mockBetService) AddBet(ctx context.Context, event *models.Event, member *models.Member, input services.BetInput) (*models.Bet, error) {
	return m.addFunc(ctx, event, member, input)
}

func (m *mockBetService) UpdateBet(ctx context.Context, event *models.Event, member *models.Member, input services.BetInput) (*models.Bet, error) {
	return m.updateFunc(ctx, event, member, input)
}

type mockBetStatusService struct {
	leaderboardFunc  func(ctx context.Context, event *models.Event) ([]scoring.Standing, error)
	memberStatusFunc func(ctx context.Context, event *models.Event, member *models.Member) ([]scoring.BetOutcome, error)
}

func (m *mockBetStatusService) GetLeaderboard(ctx context.Context, event *models.Event) ([]scoring.Standing, error) {
	return m.leaderboardFunc(ctx, event)
}

func (m *mockBetStatusService) GetMemberStatus(ctx context.Context, event *models.Event, member *models.Member) ([]scoring.BetOutcome, error) {
	return m.memberStatusFunc(ctx, event, member)
}

// testServices bundles one mock per service. Zero-value mocks panic on
// use, so a test that reaches an unexpected service fails loudly.
type testServices struct {
	auth      *mockAuthService
	events    *mockEventService
	members   *mockMemberService
	games     *mockGameService
	bets      *mockBetService
	betStatus *mockBetStatusService
}

func defaultServices() *testServices {
	return &testServices{
		auth:      &mockAuthService{},
		events:    &mockEventService{},
		members:   &mockMemberService{},
		games:     &mockGameService{},
		bets:      &mockBetService{},
		betStatus: &mockBetStatusService{},
	}
}

// withEvent makes event lookups resolve to the given event.
func (s *testServices) withEvent(event *models.Event) *testServices {
	s.events.getByNameFunc = func(ctx context.Context, name string) (*models.Event, error) {
		if name == event.Name {
			return event, nil
		}
		return nil, services.ErrEventNotFound
	}
	return s
}

func (s *testServices) withMember(member *models.Member) *testServices {
	s.members.getByNicknameFunc = func(ctx context.Context, nickname string) (*models.Member, error) {
		if nickname == member.Nickname {
			return member, nil
		}
		return nil, services.ErrMemberNotFound
	}
	return s
}

func (s *testServices) withGame(game *models.Game) *testServices {
	s.games.getByNumberFunc = func(ctx context.Context, gameNbr string) (*models.Game, error) {
		if gameNbr == game.GameNbr {
			return game, nil
		}
		return nil, services.ErrGameNotFound
	}
	return s
}

// newTestRouter wires the full routing surface over mocks, so requests
// exercise the same middleware chain as production.
func newTestRouter(s *testServices) *chi.Mux {
	resolver := middleware.NewResolver(s.events, s.members, s.games)
	h := routes.Handlers{
		Event:     handlers.NewEventHandler(s.events),
		Member:    handlers.NewMemberHandler(s.members),
		Game:      handlers.NewGameHandler(s.games),
		Bet:       handlers.NewBetHandler(s.bets),
		BetStatus: handlers.NewBetStatusHandler(s.betStatus),
		WebSocket: handlers.NewWebSocketHandler(nil, s.events),
		Static:    handlers.NewStaticHandler("testdata"),
	}
	router := chi.NewRouter()
	routes.SetupRoutes(router, s.auth, resolver, h)
	return router
}

func decodeMason(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, mason.MediaType, rr.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func documentControls(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	controls, ok := body[mason.ControlsKey].(map[string]any)
	require.True(t, ok, "document has no controls")
	return controls
}

func controlHref(t *testing.T, body map[string]any, name string) string {
	t.Helper()
	ctrl, ok := documentControls(t, body)[name].(map[string]any)
	require.True(t, ok, "control %q missing", name)
	href, _ := ctrl["href"].(string)
	return href
}

func documentItems(t *testing.T, body map[string]any) []any {
	t.Helper()
	items, ok := body[mason.ItemsKey].([]any)
	require.True(t, ok, "document has no items")
	return items
}

// multipartEmblem builds a multipart body with one emblem file part that
// carries its own content type.
func multipartEmblem(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="emblem"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func errorTitle(t *testing.T, body map[string]any) string {
	t.Helper()
	errBody, ok := body[mason.ErrorKey].(map[string]any)
	require.True(t, ok, "document has no @error")
	title, _ := errBody["@message"].(string)
	return title
}
