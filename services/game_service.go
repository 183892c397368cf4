package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sportbet/sportbet-api/live"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
)

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrGameFieldsRequired = errors.New("game number and team names are required")
	ErrGameNumberConflict = errors.New("game with given number already exists")
	ErrGameCreationFailed = errors.New("failed to add game")
	ErrGameUpdateFailed   = errors.New("failed to update game")
	ErrGameDeleteFailed   = errors.New("failed to delete game")
)

type GameService interface {
	ListGames(ctx context.Context, event *models.Event) ([]models.Game, error)
	GetGameByNumber(ctx context.Context, gameNbr string) (*models.Game, error)
	AddGame(ctx context.Context, event *models.Event, input AddGameInput) (*models.Game, error)
	UpdateResult(ctx context.Context, event *models.Event, game *models.Game, input UpdateResultInput) (*models.Game, error)
	DeleteGame(ctx context.Context, game *models.Game) error
}

type AddGameInput struct {
	GameNbr    string `json:"game_nbr"`
	HomeTeam   string `json:"home_team"`
	GuestTeam  string `json:"guest_team"`
	HomeGoals  int    `json:"home_goals"`
	GuestGoals int    `json:"guest_goals"`
}

type UpdateResultInput struct {
	HomeGoals  int `json:"home_goals"`
	GuestGoals int `json:"guest_goals"`
}

type gameService struct {
	gameRepo      repositories.GameRepository
	statusService BetStatusService
	hub           *live.Hub // nil disables live pushes
	logger        *slog.Logger
}

func NewGameService(
	gameRepo repositories.GameRepository,
	statusService BetStatusService,
	hub *live.Hub,
	logger *slog.Logger,
) GameService {
	return &gameService{
		gameRepo:      gameRepo,
		statusService: statusService,
		hub:           hub,
		logger:        logger,
	}
}

func (s *gameService) ListGames(ctx context.Context, event *models.Event) ([]models.Game, error) {
	games, err := s.gameRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games of %s: %w", event.Name, err)
	}
	return games, nil
}

func (s *gameService) GetGameByNumber(ctx context.Context, gameNbr string) (*models.Game, error) {
	game, err := s.gameRepo.GetByNumber(ctx, gameNbr)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %q: %w", gameNbr, err)
	}
	return game, nil
}

func (s *gameService) AddGame(ctx context.Context, event *models.Event, input AddGameInput) (*models.Game, error) {
	gameNbr := strings.TrimSpace(input.GameNbr)
	homeTeam := strings.TrimSpace(input.HomeTeam)
	guestTeam := strings.TrimSpace(input.GuestTeam)
	if gameNbr == "" || homeTeam == "" || guestTeam == "" {
		return nil, ErrGameFieldsRequired
	}

	game := &models.Game{
		EventID:    event.ID,
		GameNbr:    gameNbr,
		HomeTeam:   homeTeam,
		GuestTeam:  guestTeam,
		HomeGoals:  input.HomeGoals,
		GuestGoals: input.GuestGoals,
	}
	err := s.gameRepo.Create(ctx, game)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNumberConflict) {
			return nil, ErrGameNumberConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrGameCreationFailed, err)
	}
	return game, nil
}

// UpdateResult saves the final goals and pushes the new result plus the
// recomputed leaderboard to the event's live subscribers.
func (s *gameService) UpdateResult(ctx context.Context, event *models.Event, game *models.Game, input UpdateResultInput) (*models.Game, error) {
	err := s.gameRepo.UpdateGoals(ctx, game.ID, input.HomeGoals, input.GuestGoals)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("%w (game: %s): %w", ErrGameUpdateFailed, game.GameNbr, err)
	}

	game.HomeGoals = input.HomeGoals
	game.GuestGoals = input.GuestGoals
	s.broadcastResult(ctx, event, game)
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, game *models.Game) error {
	err := s.gameRepo.Delete(ctx, game.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("%w (game: %s): %w", ErrGameDeleteFailed, game.GameNbr, err)
	}
	return nil
}

func (s *gameService) broadcastResult(ctx context.Context, event *models.Event, game *models.Game) {
	if s.hub == nil {
		return
	}

	s.hub.BroadcastToRoom(event.Name, live.Message{
		Type:    live.TypeResultUpdated,
		Payload: game.Serialize(),
	})

	standings, err := s.statusService.GetLeaderboard(ctx, event)
	if err != nil {
		// The result itself was saved, the push is best effort.
		s.logger.Error("failed to compute leaderboard for live push",
			slog.String("event", event.Name), slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(event.Name, live.Message{
		Type:    live.TypeLeaderboardUpdated,
		Payload: standings,
	})
}
