// Package model defines the persisted record types.
package model

import "time"

// Session is one named keyword-weighting conversation. All keyword
// state and message history hangs off a session.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Keyword is a persisted word weight within a session.
type Keyword struct {
	Word   string `json:"word"`
	Weight uint64 `json:"weight"`
}

// Message is one normalized message appended to a session's log.
type Message struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Seq       int       `json:"seq"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
