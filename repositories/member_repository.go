package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sportbet/sportbet-api/models"
)

var (
	ErrMemberNotFound         = errors.New("member not found")
	ErrMemberNicknameConflict = errors.New("member nickname conflict")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByNickname(ctx context.Context, nickname string) (*models.Member, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Member, error)
	Delete(ctx context.Context, id int) error
}

type postgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) MemberRepository {
	return &postgresMemberRepository{db: db}
}

func (r *postgresMemberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `INSERT INTO members (nickname, event_id) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, member.Nickname, member.EventID).Scan(&member.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "members_nickname_key" {
				return ErrMemberNicknameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresMemberRepository) GetByNickname(ctx context.Context, nickname string) (*models.Member, error) {
	query := `SELECT id, nickname, event_id FROM members WHERE nickname = $1`

	var member models.Member
	err := r.db.QueryRowContext(ctx, query, nickname).Scan(&member.ID, &member.Nickname, &member.EventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *postgresMemberRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Member, error) {
	// id order keeps the encounter order for the stable leaderboard sort.
	query := `SELECT id, nickname, event_id FROM members WHERE event_id = $1 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var member models.Member
		if scanErr := rows.Scan(&member.ID, &member.Nickname, &member.EventID); scanErr != nil {
			return nil, scanErr
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *postgresMemberRepository) Delete(ctx context.Context, id int) error {
	// Bets go with the member via ON DELETE CASCADE.
	query := `DELETE FROM members WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
