package models

// Member представляет участника события. Родитель для его ставок.
type Member struct {
	ID       int    `json:"-" db:"id"`
	Nickname string `json:"nickname" db:"nickname"`
	EventID  int    `json:"-" db:"event_id"`
}

// Serialize returns the hypermedia data fields of the member.
func (m *Member) Serialize() map[string]any {
	return map[string]any{
		"nickname": m.Nickname,
	}
}

// MemberSchema describes a valid member document.
func MemberSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"nickname"},
		"properties": map[string]any{
			"nickname": map[string]any{
				"description": "Event participant nickname",
				"type":        "string",
			},
		},
	}
}
