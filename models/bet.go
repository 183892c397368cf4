package models

// Bet представляет ставку участника на один матч. Поля Nickname, GameNbr,
// HomeTeam и GuestTeam заполняются из связанных таблиц при чтении.
type Bet struct {
	ID       int `json:"-" db:"id"`
	GameID   int `json:"-" db:"game_id"`
	MemberID int `json:"-" db:"member_id"`

	Nickname   string `json:"nickname" db:"-"`
	GameNbr    string `json:"game_nbr" db:"-"`
	HomeTeam   string `json:"home_team" db:"-"`
	GuestTeam  string `json:"guest_team" db:"-"`
	HomeGoals  int    `json:"home_goals" db:"home_goals"`
	GuestGoals int    `json:"guest_goals" db:"guest_goals"`
}

// Serialize returns the hypermedia data fields of the bet, including the
// game and member context a client needs to render it standalone.
func (b *Bet) Serialize() map[string]any {
	return map[string]any{
		"nickname":    b.Nickname,
		"game_nbr":    b.GameNbr,
		"home_team":   b.HomeTeam,
		"guest_team":  b.GuestTeam,
		"home_goals":  b.HomeGoals,
		"guest_goals": b.GuestGoals,
	}
}

// BetSchema describes a valid bet document. Clients submit the short form
// (fullFormat=false); the full form is what listings return.
func BetSchema(fullFormat bool) map[string]any {
	props := map[string]any{
		"game_nbr": map[string]any{
			"description": "Game number for the bet",
			"type":        "string",
		},
		"home_goals": map[string]any{
			"description": "Home team's goals",
			"type":        "integer",
		},
		"guest_goals": map[string]any{
			"description": "Guest team's goals",
			"type":        "integer",
		},
	}
	required := []any{"game_nbr", "home_goals", "guest_goals"}
	if fullFormat {
		props["nickname"] = map[string]any{
			"description": "Nickname of the bet giver",
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
		required = []any{"nickname", "game_nbr", "home_team", "guest_team", "home_goals", "guest_goals"}
	}
	return map[string]any{
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}
