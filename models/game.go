package models

// GoalsNotPlayed is the sentinel goal value meaning the game has no result yet.
const GoalsNotPlayed = -1

// Game представляет матч события. Родитель для ставок на этот матч.
type Game struct {
	ID         int    `json:"-" db:"id"`
	EventID    int    `json:"-" db:"event_id"`
	GameNbr    string `json:"game_nbr" db:"game_nbr"`
	HomeTeam   string `json:"home_team" db:"home_team"`
	GuestTeam  string `json:"guest_team" db:"guest_team"`
	HomeGoals  int    `json:"home_goals" db:"home_goals"`
	GuestGoals int    `json:"guest_goals" db:"guest_goals"`
}

// Played reports whether the game has a final result.
func (g *Game) Played() bool {
	return g.HomeGoals > GoalsNotPlayed && g.GuestGoals > GoalsNotPlayed
}

// Serialize returns the hypermedia data fields of the game.
func (g *Game) Serialize() map[string]any {
	return map[string]any{
		"game_nbr":    g.GameNbr,
		"home_team":   g.HomeTeam,
		"guest_team":  g.GuestTeam,
		"home_goals":  g.HomeGoals,
		"guest_goals": g.GuestGoals,
	}
}

// GameSchema describes a valid game document. With onlyGoals the schema
// covers result updates, which may change nothing but the goal counts.
func GameSchema(onlyGoals bool) map[string]any {
	props := map[string]any{
		"home_goals": map[string]any{
			"description": "Home team's goals",
			"type":        "integer",
		},
		"guest_goals": map[string]any{
			"description": "Guest team's goals",
			"type":        "integer",
		},
	}
	required := []any{"home_goals", "guest_goals"}
	if !onlyGoals {
		props["game_nbr"] = map[string]any{
			"description": "Game number in event",
			"type":        "string",
		}
		props["home_team"] = map[string]any{
			"description": "Home team's name",
			"type":        "string",
		}
		props["guest_team"] = map[string]any{
			"description": "Guest team's name",
			"type":        "string",
		}
		required = []any{"game_nbr", "home_team", "guest_team", "home_goals", "guest_goals"}
	}
	return map[string]any{
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}
