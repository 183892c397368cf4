package models

// Event представляет соревнование. Родитель для игр, участников и ставок.
type Event struct {
	ID   int    `json:"-" db:"id"`
	Name string `json:"name" db:"name"`

	EmblemKey *string `json:"-" db:"emblem_key"`
	EmblemURL *string `json:"emblem_url,omitempty" db:"-"`
}

// Serialize returns the hypermedia data fields of the event.
func (e *Event) Serialize() map[string]any {
	data := map[string]any{
		"name": e.Name,
	}
	if e.EmblemURL != nil {
		data["emblem_url"] = *e.EmblemURL
	}
	return data
}

// EventSchema describes a valid event document for request validation
// and for the schema attached to write controls.
func EventSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{
				"description": "Event name",
				"type":        "string",
			},
		},
	}
}
