package db

import "time"

// ---- Core Models ----

type ContactMessage struct {
	ID        string    `json:"id"` // uuid
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	RemoteIP  string    `json:"remote_ip"`
	CreatedAt time.Time `json:"created_at"`
}
