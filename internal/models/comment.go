package models

import "time"

// Comment is a visitor feedback entry. The only entity created at runtime;
// held in memory for the lifetime of the process, never persisted.
type Comment struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	FullName    string    `json:"full_name"`
	Institution string    `json:"institution"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
