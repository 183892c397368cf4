package models

// APIKey хранит bcrypt-дайджест ключа доступа к API.
// Admin-ключи открывают управляющие операции (события, эмблемы).
type APIKey struct {
	Key     string `json:"-" db:"key"`
	EventID *int   `json:"-" db:"event_id"`
	Admin   bool   `json:"-" db:"admin"`
}
