// Package scoring assigns points to bets against final game results and
// ranks members. It is pure computation: callers pass already-resolved
// entities, referential integrity is assumed and never re-checked here.
package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sportbet/sportbet-api/models"
)

// ErrUnknownGame is returned when a bet references a game that is not in
// the supplied game set. With foreign keys intact this cannot happen, so
// callers treat it as an internal failure.
var ErrUnknownGame = errors.New("bet references unknown game")

// BetPoints scores one bet against a final result. The rules cascade, only
// the first matching one fires:
//
//	game not played yet (sentinel goals)    -> 0
//	exact result                            -> 3
//	goal difference (covers a drawn guess)  -> 2
//	winning side only                       -> 1
//	anything else                           -> 0
func BetPoints(betHome, betGuest, gameHome, gameGuest int) int {
	switch {
	case gameHome < 0 || gameGuest < 0:
		return 0
	case betHome == gameHome && betGuest == gameGuest:
		return 3
	case betHome-betGuest == gameHome-gameGuest:
		return 2
	case gameHome > gameGuest && betHome > betGuest:
		return 1
	case gameHome < gameGuest && betHome < betGuest:
		return 1
	default:
		return 0
	}
}

// Standing is one leaderboard row.
type Standing struct {
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
}

// BetOutcome is one row of a member's detailed points, with the actual
// result and the member's guess rendered as "home-guest" strings.
type BetOutcome struct {
	GameNbr string `json:"game_nbr"`
	Points  int    `json:"points"`
	Result  string `json:"result"`
	Bet     string `json:"bet"`
}

// MemberBets pairs a member's nickname with the bets recorded for them.
type MemberBets struct {
	Nickname string
	Bets     []models.Bet
}

// Leaderboard totals each member's points over all their bets and ranks
// the members by total, highest first. The sort is stable: members with
// equal totals keep their encounter order.
func Leaderboard(entries []MemberBets, games map[string]models.Game) ([]Standing, error) {
	standings := make([]Standing, 0, len(entries))
	for _, entry := range entries {
		total := 0
		for _, bet := range entry.Bets {
			game, ok := games[bet.GameNbr]
			if !ok {
				return nil, fmt.Errorf("%w: member %s, game %s", ErrUnknownGame, entry.Nickname, bet.GameNbr)
			}
			total += BetPoints(bet.HomeGoals, bet.GuestGoals, game.HomeGoals, game.GuestGoals)
		}
		standings = append(standings, Standing{Nickname: entry.Nickname, Points: total})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	return standings, nil
}

// MemberDetail scores each of one member's bets and orders the rows by
// game number. Game numbers are opaque identifiers, so the order is the
// string order, not numeric.
func MemberDetail(bets []models.Bet, games map[string]models.Game) ([]BetOutcome, error) {
	outcomes := make([]BetOutcome, 0, len(bets))
	for _, bet := range bets {
		game, ok := games[bet.GameNbr]
		if !ok {
			return nil, fmt.Errorf("%w: game %s", ErrUnknownGame, bet.GameNbr)
		}
		outcomes = append(outcomes, BetOutcome{
			GameNbr: bet.GameNbr,
			Points:  BetPoints(bet.HomeGoals, bet.GuestGoals, game.HomeGoals, game.GuestGoals),
			Result:  score(game.HomeGoals, game.GuestGoals),
			Bet:     score(bet.HomeGoals, bet.GuestGoals),
		})
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return strings.Compare(outcomes[i].GameNbr, outcomes[j].GameNbr) < 0
	})
	return outcomes, nil
}

func score(home, guest int) string {
	return fmt.Sprintf("%d-%d", home, guest)
}

// GameIndex keys games by their game number for the lookup the rankers need.
func GameIndex(games []models.Game) map[string]models.Game {
	index := make(map[string]models.Game, len(games))
	for _, game := range games {
		index[game.GameNbr] = game
	}
	return index
}
