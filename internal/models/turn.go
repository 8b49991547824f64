// Package models defines the shared data types for the hotelbot service.
package models

import "time"

// Locale identifies the response language for a turn.
// The set is closed: adding a locale requires extending every knowledge
// entry and the marker-word list.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleFR
}

// Turn is one user-message/bot-response pair, the unit of persistence.
// ID and Timestamp are assigned by the store on save.
type Turn struct {
	ID          int64     `json:"id,omitempty"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Locale      Locale    `json:"language"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id,omitempty"`
}

// MessageCount is a user message with its occurrence count, grouped
// case-insensitively on the exact text.
type MessageCount struct {
	Message string `json:"question"`
	Count   int    `json:"count"`
}

// Statistics aggregates usage across all stored turns.
//
// TotalMessages comes from the running counter, not a row count: it is a
// lifetime total and is not decremented by retention purges.
type Statistics struct {
	TotalMessages int            `json:"total_messages"`
	LastUpdated   time.Time      `json:"last_updated"`
	ByLocale      map[Locale]int `json:"messages_by_language"`
	Today         int            `json:"messages_today"`
	ThisWeek      int            `json:"messages_this_week"`
	TopMessages   []MessageCount `json:"top_questions"`
}
