package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are executed in order by Init. Cascade rules carry the
// ownership chain: event -> games/members -> bets.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id         SERIAL PRIMARY KEY,
		name       VARCHAR(64) NOT NULL,
		emblem_key TEXT,
		CONSTRAINT events_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id       SERIAL PRIMARY KEY,
		nickname VARCHAR(64) NOT NULL,
		event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		CONSTRAINT members_nickname_key UNIQUE (nickname)
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		id          SERIAL PRIMARY KEY,
		event_id    INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		game_nbr    VARCHAR(64) NOT NULL,
		home_team   VARCHAR(64) NOT NULL,
		guest_team  VARCHAR(64) NOT NULL,
		home_goals  INTEGER NOT NULL,
		guest_goals INTEGER NOT NULL,
		CONSTRAINT games_game_nbr_key UNIQUE (game_nbr)
	)`,
	`CREATE TABLE IF NOT EXISTS bets (
		id          SERIAL PRIMARY KEY,
		game_id     INTEGER NOT NULL REFERENCES games (id) ON DELETE CASCADE,
		member_id   INTEGER NOT NULL REFERENCES members (id) ON DELETE CASCADE,
		home_goals  INTEGER NOT NULL,
		guest_goals INTEGER NOT NULL,
		CONSTRAINT bets_member_game_key UNIQUE (member_id, game_id)
	)`,
	`CREATE TABLE IF NOT EXISTS api_keys (
		key      VARCHAR(60) PRIMARY KEY,
		event_id INTEGER REFERENCES events (id) ON DELETE CASCADE,
		admin    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Init creates all tables if they do not exist yet.
func Init(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

// Clear drops all content. Order follows foreign keys, children first.
func Clear(ctx context.Context, db *sql.DB) error {
	for _, table := range []string{"bets", "games", "members", "api_keys", "events"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
