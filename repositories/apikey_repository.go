package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sportbet/sportbet-api/models"
)

var ErrAPIKeyNotFound = errors.New("api key not found")

type APIKeyRepository interface {
	Save(ctx context.Context, key *models.APIKey) error
	GetByAdmin(ctx context.Context, admin bool) (*models.APIKey, error)
}

type postgresAPIKeyRepository struct {
	db *sql.DB
}

func NewPostgresAPIKeyRepository(db *sql.DB) APIKeyRepository {
	return &postgresAPIKeyRepository{db: db}
}

// Save stores the key digest, replacing any previous key of the same class.
// One non-admin and one admin key exist per deployment.
func (r *postgresAPIKeyRepository) Save(ctx context.Context, key *models.APIKey) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM api_keys WHERE admin = $1`, key.Admin); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO api_keys (key, event_id, admin) VALUES ($1, $2, $3)`,
		key.Key, key.EventID, key.Admin)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postgresAPIKeyRepository) GetByAdmin(ctx context.Context, admin bool) (*models.APIKey, error) {
	query := `SELECT key, event_id, admin FROM api_keys WHERE admin = $1 LIMIT 1`

	var key models.APIKey
	err := r.db.QueryRowContext(ctx, query, admin).Scan(&key.Key, &key.EventID, &key.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &key, nil
}
