package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sportbet/sportbet-api/models"
)

var (
	ErrBetNotFound = errors.New("bet not found")
	ErrBetConflict = errors.New("bet already exists for the member and game")
)

type BetRepository interface {
	Create(ctx context.Context, bet *models.Bet) error
	GetByMemberAndGame(ctx context.Context, memberID, gameID int) (*models.Bet, error)
	UpdateGoals(ctx context.Context, id, homeGoals, guestGoals int) error
	ListByEvent(ctx context.Context, eventID int) ([]models.Bet, error)
	ListByGame(ctx context.Context, gameID int) ([]models.Bet, error)
	ListByMember(ctx context.Context, memberID int) ([]models.Bet, error)
}

type postgresBetRepository struct {
	db *sql.DB
}

func NewPostgresBetRepository(db *sql.DB) BetRepository {
	return &postgresBetRepository{db: db}
}

// betSelect joins the member and game rows so listings carry the context
// fields of a serialized bet.
const betSelect = `
	SELECT b.id, b.game_id, b.member_id, b.home_goals, b.guest_goals,
	       m.nickname, g.game_nbr, g.home_team, g.guest_team
	FROM bets b
	JOIN members m ON m.id = b.member_id
	JOIN games g ON g.id = b.game_id`

func (r *postgresBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	query := `INSERT INTO bets (game_id, member_id, home_goals, guest_goals)
		VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		bet.GameID, bet.MemberID, bet.HomeGoals, bet.GuestGoals).Scan(&bet.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "bets_member_game_key" {
				return ErrBetConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresBetRepository) GetByMemberAndGame(ctx context.Context, memberID, gameID int) (*models.Bet, error) {
	query := betSelect + ` WHERE b.member_id = $1 AND b.game_id = $2`

	var bet models.Bet
	err := r.db.QueryRowContext(ctx, query, memberID, gameID).Scan(
		&bet.ID, &bet.GameID, &bet.MemberID, &bet.HomeGoals, &bet.GuestGoals,
		&bet.Nickname, &bet.GameNbr, &bet.HomeTeam, &bet.GuestTeam)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, err
	}
	return &bet, nil
}

func (r *postgresBetRepository) UpdateGoals(ctx context.Context, id, homeGoals, guestGoals int) error {
	query := `UPDATE bets SET home_goals = $1, guest_goals = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, homeGoals, guestGoals, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBetNotFound
	}
	return nil
}

func (r *postgresBetRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Bet, error) {
	query := betSelect + ` WHERE g.event_id = $1 ORDER BY g.game_nbr ASC, b.id ASC`
	return r.list(ctx, query, eventID)
}

func (r *postgresBetRepository) ListByGame(ctx context.Context, gameID int) ([]models.Bet, error) {
	query := betSelect + ` WHERE b.game_id = $1 ORDER BY b.id ASC`
	return r.list(ctx, query, gameID)
}

func (r *postgresBetRepository) ListByMember(ctx context.Context, memberID int) ([]models.Bet, error) {
	query := betSelect + ` WHERE b.member_id = $1 ORDER BY g.game_nbr ASC`
	return r.list(ctx, query, memberID)
}

func (r *postgresBetRepository) list(ctx context.Context, query string, arg any) ([]models.Bet, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bets := make([]models.Bet, 0)
	for rows.Next() {
		var bet models.Bet
		if scanErr := rows.Scan(
			&bet.ID, &bet.GameID, &bet.MemberID, &bet.HomeGoals, &bet.GuestGoals,
			&bet.Nickname, &bet.GameNbr, &bet.HomeTeam, &bet.GuestTeam); scanErr != nil {
			return nil, scanErr
		}
		bets = append(bets, bet)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bets, nil
}
