package model

import "time"

// ChatRequest represents a chatbot message
type ChatRequest struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// ChatResult is the data payload of a chat response
type ChatResult struct {
	Products      []Product `json:"products"`
	OriginalQuery string    `json:"original_query"`
	ParsedIntent  Intent    `json:"parsed_intent"`
}

// ChatHistoryEntry is one stored message of a conversation
type ChatHistoryEntry struct {
	UserID        int64     `json:"user_id" db:"user_id"`
	Message       string    `json:"message" db:"message"`
	IsUserMessage bool      `json:"is_user_message" db:"is_user_message"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// SaveHistoryRequest is the body of POST /chat/history.
// Pointer fields distinguish "absent" from zero values.
type SaveHistoryRequest struct {
	UserID        *int64  `json:"user_id"`
	Message       *string `json:"message"`
	IsUserMessage *bool   `json:"is_user_message"`
	Timestamp     *string `json:"timestamp,omitempty"`
}

// ChatHistory wraps a list of entries
type ChatHistory struct {
	History []ChatHistoryEntry `json:"history"`
}
