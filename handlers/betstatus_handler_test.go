package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/scoring"
)

func TestGetLeaderboard(t *testing.T) {
	t.Parallel()

	event := &models.Event{ID: 1, Name: "ev"}
	s := defaultServices().withEvent(event)
	s.betStatus.leaderboardFunc = func(ctx context.Context, e *models.Event) ([]scoring.Standing, error) {
		return []scoring.Standing{
			{Nickname: "alice", Points: 3},
			{Nickname: "bob", Points: 2},
		}, nil
	}

	rr := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ev/betstatus/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMason(t, rr)
	assert.Equal(t, mason.BetStatusURL("ev"), controlHref(t, body, "self"))
	assert.Equal(t, mason.BetStatusProfile, controlHref(t, body, "profile"))
	assert.Equal(t, mason.EventURL("ev"), controlHref(t, body, "sportbet:event-ev"))

	items := documentItems(t, body)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "alice", first["nickname"])
	assert.Equal(t, float64(3), first["points"])
	// Ranking order is preserved in the item list.
	assert.Equal(t, "bob", items[1].(map[string]any)["nickname"])
	assert.Equal(t, mason.MemberBetStatusURL("ev", "alice"), controlHref(t, body, "self-1"))
}

func TestGetLeaderboardServiceFailureIs500(t *testing.T) {
	t.Parallel()

	s := defaultServices().withEvent(&models.Event{ID: 1, Name: "ev"})
	s.betStatus.leaderboardFunc = func(ctx context.Context, e *models.Event) ([]scoring.Standing, error) {
		return nil, errors.New("query failed")
	}

	rr := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ev/betstatus/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetMemberStatus(t *testing.T) {
	t.Parallel()

	event := &models.Event{ID: 1, Name: "ev"}
	member := &models.Member{ID: 7, Nickname: "nick", EventID: 1}
	s := defaultServices().withEvent(event).withMember(member)
	s.betStatus.memberStatusFunc = func(ctx context.Context, e *models.Event, m *models.Member) ([]scoring.BetOutcome, error) {
		require.Same(t, member, m)
		return []scoring.BetOutcome{
			{GameNbr: "G01", Points: 3, Result: "3-1", Bet: "3-1"},
			{GameNbr: "G02", Points: 0, Result: "-1--1", Bet: "2-0"},
		}, nil
	}

	rr := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ev/betstatus/nick/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMason(t, rr)
	assert.Equal(t, mason.MemberBetStatusURL("ev", "nick"), controlHref(t, body, "self"))
	assert.Equal(t, mason.BetStatusURL("ev"), controlHref(t, body, "sportbet:status-all"))

	items := documentItems(t, body)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "G01", first["game_nbr"])
	assert.Equal(t, float64(3), first["points"])
	assert.Equal(t, "3-1", first["result"])
	assert.Equal(t, "3-1", first["bet"])
	second := items[1].(map[string]any)
	assert.Equal(t, "-1--1", second["result"])
}
