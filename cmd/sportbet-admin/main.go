package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/sportbet/sportbet-api/config"
	"github.com/sportbet/sportbet-api/db"
	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
	"github.com/sportbet/sportbet-api/services"
)

const usage = `Usage: sportbet-admin <command> [options]

Commands:
  db-init            create the database tables
  db-clear           delete all rows from every table
  db-fill            populate the database with sample betting data
  gen-key [-admin]   generate a fresh API key and print it once
`

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd := os.Args[1]; cmd {
	case "db-init":
		err = db.Init(ctx, dbConn)
	case "db-clear":
		err = db.Clear(ctx, dbConn)
	case "db-fill":
		err = fillSampleData(ctx, dbConn)
	case "gen-key":
		fs := flag.NewFlagSet("gen-key", flag.ExitOnError)
		admin := fs.Bool("admin", false, "generate the admin key instead of the user key")
		_ = fs.Parse(os.Args[2:])
		err = generateKey(ctx, dbConn, *admin)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("command completed", slog.String("command", os.Args[1]))
}

func generateKey(ctx context.Context, dbConn *sql.DB, admin bool) error {
	auth := services.NewAuthService(repositories.NewPostgresAPIKeyRepository(dbConn))
	token, err := auth.GenerateKey(ctx, admin, nil)
	if err != nil {
		return err
	}
	// Печатается ровно один раз, в базе хранится только дайджест.
	fmt.Println(token)
	return nil
}

// fillSampleData seeds one event with a few members, games and bets so the
// API has something to show right after setup.
func fillSampleData(ctx context.Context, dbConn *sql.DB) error {
	if err := db.Init(ctx, dbConn); err != nil {
		return err
	}

	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	memberRepo := repositories.NewPostgresMemberRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	betRepo := repositories.NewPostgresBetRepository(dbConn)

	event := &models.Event{Name: "Bandy-WM-2026"}
	if err := eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create sample event: %w", err)
	}

	members := []*models.Member{
		{Nickname: "mholappa", EventID: event.ID},
		{Nickname: "pjholappa", EventID: event.ID},
		{Nickname: "vholappa", EventID: event.ID},
	}
	for _, m := range members {
		if err := memberRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("failed to create sample member %s: %w", m.Nickname, err)
		}
	}

	games := []*models.Game{
		{EventID: event.ID, GameNbr: "G01", HomeTeam: "Finland", GuestTeam: "Sweden", HomeGoals: 3, GuestGoals: 4},
		{EventID: event.ID, GameNbr: "G02", HomeTeam: "Russia", GuestTeam: "Kazakhstan", HomeGoals: 8, GuestGoals: 2},
		{EventID: event.ID, GameNbr: "G03", HomeTeam: "Norway", GuestTeam: "USA",
			HomeGoals: models.GoalsNotPlayed, GuestGoals: models.GoalsNotPlayed},
	}
	for _, g := range games {
		if err := gameRepo.Create(ctx, g); err != nil {
			return fmt.Errorf("failed to create sample game %s: %w", g.GameNbr, err)
		}
	}

	bets := []*models.Bet{
		{GameID: games[0].ID, MemberID: members[0].ID, HomeGoals: 3, GuestGoals: 4},
		{GameID: games[0].ID, MemberID: members[1].ID, HomeGoals: 2, GuestGoals: 3},
		{GameID: games[1].ID, MemberID: members[0].ID, HomeGoals: 5, GuestGoals: 5},
		{GameID: games[2].ID, MemberID: members[2].ID, HomeGoals: 1, GuestGoals: 2},
	}
	for _, b := range bets {
		if err := betRepo.Create(ctx, b); err != nil {
			return fmt.Errorf("failed to create sample bet: %w", err)
		}
	}
	return nil
}
