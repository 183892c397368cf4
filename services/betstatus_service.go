package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
	"github.com/sportbet/sportbet-api/scoring"
)

// BetStatusService derives the betting leaderboard and per-member point
// details from the recorded bets and game results.
type BetStatusService interface {
	GetLeaderboard(ctx context.Context, event *models.Event) ([]scoring.Standing, error)
	GetMemberStatus(ctx context.Context, event *models.Event, member *models.Member) ([]scoring.BetOutcome, error)
}

type betStatusService struct {
	memberRepo repositories.MemberRepository
	gameRepo   repositories.GameRepository
	betRepo    repositories.BetRepository
}

func NewBetStatusService(
	memberRepo repositories.MemberRepository,
	gameRepo repositories.GameRepository,
	betRepo repositories.BetRepository,
) BetStatusService {
	return &betStatusService{
		memberRepo: memberRepo,
		gameRepo:   gameRepo,
		betRepo:    betRepo,
	}
}

func (s *betStatusService) GetLeaderboard(ctx context.Context, event *models.Event) ([]scoring.Standing, error) {
	var (
		members []models.Member
		games   []models.Game
		bets    []models.Bet
	)

	// Independent reads, fetched concurrently.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.memberRepo.ListByEvent(gCtx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListByEvent(gCtx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		bets, err = s.betRepo.ListByEvent(gCtx, event.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load betting status of %s: %w", event.Name, err)
	}

	betsByMember := make(map[int][]models.Bet, len(members))
	for _, bet := range bets {
		betsByMember[bet.MemberID] = append(betsByMember[bet.MemberID], bet)
	}

	entries := make([]scoring.MemberBets, 0, len(members))
	for _, member := range members {
		entries = append(entries, scoring.MemberBets{
			Nickname: member.Nickname,
			Bets:     betsByMember[member.ID],
		})
	}

	standings, err := scoring.Leaderboard(entries, scoring.GameIndex(games))
	if err != nil {
		return nil, fmt.Errorf("failed to rank members of %s: %w", event.Name, err)
	}
	return standings, nil
}

func (s *betStatusService) GetMemberStatus(ctx context.Context, event *models.Event, member *models.Member) ([]scoring.BetOutcome, error) {
	var (
		games []models.Game
		bets  []models.Bet
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListByEvent(gCtx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		bets, err = s.betRepo.ListByMember(gCtx, member.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load bet status of %s: %w", member.Nickname, err)
	}

	outcomes, err := scoring.MemberDetail(bets, scoring.GameIndex(games))
	if err != nil {
		return nil, fmt.Errorf("failed to score bets of %s: %w", member.Nickname, err)
	}
	return outcomes, nil
}
