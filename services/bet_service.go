package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
)

var (
	ErrBetNotFound       = errors.New("bet not found")
	ErrBetConflict       = errors.New("bet already exists for the given member and game")
	ErrBetNegativeGoals  = errors.New("bet goals must not be negative")
	ErrBetGameNotFound   = errors.New("game not found")
	ErrBetCreationFailed = errors.New("failed to add bet")
	ErrBetUpdateFailed   = errors.New("failed to update bet")
)

type BetService interface {
	ListBets(ctx context.Context, event *models.Event, game *models.Game) ([]models.Bet, error)
	ListMemberBets(ctx context.Context, member *models.Member) ([]models.Bet, error)
	AddBet(ctx context.Context, event *models.Event, member *models.Member, input BetInput) (*models.Bet, error)
	UpdateBet(ctx context.Context, event *models.Event, member *models.Member, input BetInput) (*models.Bet, error)
}

type BetInput struct {
	GameNbr    string `json:"game_nbr"`
	HomeGoals  int    `json:"home_goals"`
	GuestGoals int    `json:"guest_goals"`
}

type betService struct {
	betRepo  repositories.BetRepository
	gameRepo repositories.GameRepository
}

func NewBetService(betRepo repositories.BetRepository, gameRepo repositories.GameRepository) BetService {
	return &betService{
		betRepo:  betRepo,
		gameRepo: gameRepo,
	}
}

// ListBets returns the event's bets, narrowed to one game when given.
func (s *betService) ListBets(ctx context.Context, event *models.Event, game *models.Game) ([]models.Bet, error) {
	if game != nil {
		bets, err := s.betRepo.ListByGame(ctx, game.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list bets of game %s: %w", game.GameNbr, err)
		}
		return bets, nil
	}

	bets, err := s.betRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets of %s: %w", event.Name, err)
	}
	return bets, nil
}

func (s *betService) ListMemberBets(ctx context.Context, member *models.Member) ([]models.Bet, error) {
	bets, err := s.betRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets of %s: %w", member.Nickname, err)
	}
	return bets, nil
}

// AddBet records a new bet. Adding is strict: a bet for the same member
// and game must not exist yet, updates go through UpdateBet.
func (s *betService) AddBet(ctx context.Context, event *models.Event, member *models.Member, input BetInput) (*models.Bet, error) {
	game, err := s.resolveGame(ctx, event, input)
	if err != nil {
		return nil, err
	}

	bet := &models.Bet{
		GameID:     game.ID,
		MemberID:   member.ID,
		Nickname:   member.Nickname,
		GameNbr:    game.GameNbr,
		HomeTeam:   game.HomeTeam,
		GuestTeam:  game.GuestTeam,
		HomeGoals:  input.HomeGoals,
		GuestGoals: input.GuestGoals,
	}
	err = s.betRepo.Create(ctx, bet)
	if err != nil {
		if errors.Is(err, repositories.ErrBetConflict) {
			return nil, ErrBetConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrBetCreationFailed, err)
	}
	return bet, nil
}

func (s *betService) UpdateBet(ctx context.Context, event *models.Event, member *models.Member, input BetInput) (*models.Bet, error) {
	game, err := s.resolveGame(ctx, event, input)
	if err != nil {
		return nil, err
	}

	bet, err := s.betRepo.GetByMemberAndGame(ctx, member.ID, game.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrBetNotFound) {
			return nil, ErrBetNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrBetUpdateFailed, err)
	}

	if err := s.betRepo.UpdateGoals(ctx, bet.ID, input.HomeGoals, input.GuestGoals); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBetUpdateFailed, err)
	}
	bet.HomeGoals = input.HomeGoals
	bet.GuestGoals = input.GuestGoals
	return bet, nil
}

// resolveGame validates the submitted goals and finds the bet's game
// within the event. Bets on unplayed games are fine, but a bet itself may
// never carry the sentinel negative goals.
func (s *betService) resolveGame(ctx context.Context, event *models.Event, input BetInput) (*models.Game, error) {
	if input.HomeGoals < 0 || input.GuestGoals < 0 {
		return nil, ErrBetNegativeGoals
	}

	game, err := s.gameRepo.GetByEventAndNumber(ctx, event.ID, input.GameNbr)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrBetGameNotFound
		}
		return nil, fmt.Errorf("failed to resolve game %q: %w", input.GameNbr, err)
	}
	return game, nil
}
