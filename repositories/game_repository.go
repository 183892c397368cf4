package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sportbet/sportbet-api/models"
)

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrGameNumberConflict = errors.New("game number conflict")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByNumber(ctx context.Context, gameNbr string) (*models.Game, error)
	GetByEventAndNumber(ctx context.Context, eventID int, gameNbr string) (*models.Game, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Game, error)
	UpdateGoals(ctx context.Context, id, homeGoals, guestGoals int) error
	Delete(ctx context.Context, id int) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, event_id, game_nbr, home_team, guest_team, home_goals, guest_goals`

func scanGame(row *sql.Row) (*models.Game, error) {
	var game models.Game
	err := row.Scan(&game.ID, &game.EventID, &game.GameNbr,
		&game.HomeTeam, &game.GuestTeam, &game.HomeGoals, &game.GuestGoals)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `INSERT INTO games (event_id, game_nbr, home_team, guest_team, home_goals, guest_goals)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		game.EventID, game.GameNbr, game.HomeTeam, game.GuestTeam,
		game.HomeGoals, game.GuestGoals).Scan(&game.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "games_game_nbr_key" {
				return ErrGameNumberConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresGameRepository) GetByNumber(ctx context.Context, gameNbr string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE game_nbr = $1`
	return scanGame(r.db.QueryRowContext(ctx, query, gameNbr))
}

func (r *postgresGameRepository) GetByEventAndNumber(ctx context.Context, eventID int, gameNbr string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE event_id = $1 AND game_nbr = $2`
	return scanGame(r.db.QueryRowContext(ctx, query, eventID, gameNbr))
}

func (r *postgresGameRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE event_id = $1 ORDER BY game_nbr ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if scanErr := rows.Scan(&game.ID, &game.EventID, &game.GameNbr,
			&game.HomeTeam, &game.GuestTeam, &game.HomeGoals, &game.GuestGoals); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *postgresGameRepository) UpdateGoals(ctx context.Context, id, homeGoals, guestGoals int) error {
	query := `UPDATE games SET home_goals = $1, guest_goals = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, homeGoals, guestGoals, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *postgresGameRepository) Delete(ctx context.Context, id int) error {
	// Bets go with the game via ON DELETE CASCADE.
	query := `DELETE FROM games WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}
