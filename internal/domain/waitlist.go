package domain

import "time"

type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// WaitlistMeta is stored alongside a signup as a JSON blob.
type WaitlistMeta struct {
	UserAgent string `json:"user_agent,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
