package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sportbet/sportbet-api/models"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventNameConflict = errors.New("event name conflict")
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByName(ctx context.Context, name string) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	UpdateEmblemKey(ctx context.Context, id int, emblemKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `INSERT INTO events (name) VALUES ($1) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, event.Name).Scan(&event.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "events_name_key" {
				return ErrEventNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresEventRepository) GetByName(ctx context.Context, name string) (*models.Event, error) {
	query := `SELECT id, name, emblem_key FROM events WHERE name = $1`

	var event models.Event
	err := r.db.QueryRowContext(ctx, query, name).Scan(&event.ID, &event.Name, &event.EmblemKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *postgresEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `SELECT id, name, emblem_key FROM events ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		if scanErr := rows.Scan(&event.ID, &event.Name, &event.EmblemKey); scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *postgresEventRepository) UpdateEmblemKey(ctx context.Context, id int, emblemKey *string) error {
	query := `UPDATE events SET emblem_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, emblemKey, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *postgresEventRepository) Delete(ctx context.Context, id int) error {
	// Games, members and bets go with the event via ON DELETE CASCADE.
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
