package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbet/sportbet-api/models"
)

func TestBetPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		betHome, betGuest   int
		gameHome, gameGuest int
		want                int
	}{
		{"unplayed game scores nothing", 2, 1, models.GoalsNotPlayed, models.GoalsNotPlayed, 0},
		{"unplayed even on exact sentinel guess", -1, -1, models.GoalsNotPlayed, models.GoalsNotPlayed, 0},
		{"exact result", 3, 1, 3, 1, 3},
		{"exact draw", 2, 2, 2, 2, 3},
		{"right goal difference", 2, 1, 4, 3, 2},
		{"right draw wrong goals", 1, 1, 3, 3, 2},
		{"right home winner narrow margin missed", 3, 0, 2, 1, 1},
		{"right home winner only", 2, 1, 5, 1, 1},
		{"right guest winner only", 0, 1, 2, 5, 1},
		{"wrong winner", 2, 1, 1, 2, 0},
		{"guessed draw on decided game", 1, 1, 2, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BetPoints(tt.betHome, tt.betGuest, tt.gameHome, tt.gameGuest)
			assert.Equal(t, tt.want, got)
		})
	}
}

func playedGame(nbr string, home, guest int) models.Game {
	return models.Game{GameNbr: nbr, HomeTeam: "H", GuestTeam: "G", HomeGoals: home, GuestGoals: guest}
}

func TestLeaderboardOrdersByPointsDescending(t *testing.T) {
	t.Parallel()

	games := GameIndex([]models.Game{
		playedGame("G01", 3, 1),
		playedGame("G02", 0, 2),
	})
	entries := []MemberBets{
		{Nickname: "carol", Bets: []models.Bet{
			{GameNbr: "G01", HomeGoals: 2, GuestGoals: 1}, // winner: 1
		}},
		{Nickname: "alice", Bets: []models.Bet{
			{GameNbr: "G01", HomeGoals: 3, GuestGoals: 1}, // exact: 3
		}},
		{Nickname: "bob", Bets: []models.Bet{
			{GameNbr: "G02", HomeGoals: 1, GuestGoals: 3}, // difference: 2
		}},
	}

	standings, err := Leaderboard(entries, games)
	require.NoError(t, err)
	assert.Equal(t, []Standing{
		{Nickname: "alice", Points: 3},
		{Nickname: "bob", Points: 2},
		{Nickname: "carol", Points: 1},
	}, standings)
}

func TestLeaderboardKeepsTiesStable(t *testing.T) {
	t.Parallel()

	games := GameIndex([]models.Game{playedGame("G01", 2, 2)})
	entries := []MemberBets{
		{Nickname: "first", Bets: []models.Bet{{GameNbr: "G01", HomeGoals: 1, GuestGoals: 1}}},
		{Nickname: "second", Bets: []models.Bet{{GameNbr: "G01", HomeGoals: 0, GuestGoals: 0}}},
		{Nickname: "bettor", Bets: []models.Bet{{GameNbr: "G01", HomeGoals: 2, GuestGoals: 2}}},
	}

	standings, err := Leaderboard(entries, games)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "bettor", standings[0].Nickname)
	// first and second both scored 2, encounter order preserved.
	assert.Equal(t, "first", standings[1].Nickname)
	assert.Equal(t, "second", standings[2].Nickname)
}

func TestLeaderboardWithoutBetsScoresZero(t *testing.T) {
	t.Parallel()

	standings, err := Leaderboard([]MemberBets{{Nickname: "alone"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []Standing{{Nickname: "alone", Points: 0}}, standings)
}

func TestLeaderboardRejectsUnknownGame(t *testing.T) {
	t.Parallel()

	entries := []MemberBets{
		{Nickname: "alice", Bets: []models.Bet{{GameNbr: "missing", HomeGoals: 1, GuestGoals: 0}}},
	}
	_, err := Leaderboard(entries, map[string]models.Game{})
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestMemberDetailOrdersByGameNumberString(t *testing.T) {
	t.Parallel()

	games := GameIndex([]models.Game{
		playedGame("G10", 1, 0),
		playedGame("G2", 2, 2),
		playedGame("G1", 0, 3),
	})
	bets := []models.Bet{
		{GameNbr: "G2", HomeGoals: 1, GuestGoals: 1},
		{GameNbr: "G1", HomeGoals: 0, GuestGoals: 3},
		{GameNbr: "G10", HomeGoals: 2, GuestGoals: 1},
	}

	outcomes, err := MemberDetail(bets, games)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	// String order, so G10 sorts before G2.
	assert.Equal(t, "G1", outcomes[0].GameNbr)
	assert.Equal(t, "G10", outcomes[1].GameNbr)
	assert.Equal(t, "G2", outcomes[2].GameNbr)

	assert.Equal(t, BetOutcome{GameNbr: "G1", Points: 3, Result: "0-3", Bet: "0-3"}, outcomes[0])
	// Bet 2-1 on a 1-0 result is the right goal difference, not just the winner.
	assert.Equal(t, BetOutcome{GameNbr: "G10", Points: 2, Result: "1-0", Bet: "2-1"}, outcomes[1])
	assert.Equal(t, BetOutcome{GameNbr: "G2", Points: 2, Result: "2-2", Bet: "1-1"}, outcomes[2])
}

func TestMemberDetailRendersUnplayedResult(t *testing.T) {
	t.Parallel()

	games := GameIndex([]models.Game{
		playedGame("G01", models.GoalsNotPlayed, models.GoalsNotPlayed),
	})
	outcomes, err := MemberDetail([]models.Bet{{GameNbr: "G01", HomeGoals: 2, GuestGoals: 0}}, games)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 0, outcomes[0].Points)
	assert.Equal(t, "-1--1", outcomes[0].Result)
}

func TestMemberDetailRejectsUnknownGame(t *testing.T) {
	t.Parallel()

	_, err := MemberDetail([]models.Bet{{GameNbr: "nope"}}, nil)
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestGameIndex(t *testing.T) {
	t.Parallel()

	games := []models.Game{playedGame("A", 1, 0), playedGame("B", 0, 0)}
	index := GameIndex(games)
	require.Len(t, index, 2)
	assert.Equal(t, games[0], index["A"])
	assert.Equal(t, games[1], index["B"])
}
