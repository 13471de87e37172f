package repository

import (
	"context"
	"fmt"

	"shopchat/internal/model"
)

// SaveChatEntry stores one chat message
func (r *Repository) SaveChatEntry(ctx context.Context, entry model.ChatHistoryEntry) error {
	query := r.db.Rebind(`
		INSERT INTO chat_history (user_id, message, is_user_message, timestamp)
		VALUES (?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, entry.UserID, entry.Message, entry.IsUserMessage, entry.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("failed to save chat entry: %w", err)
	}
	return nil
}

// ListChatHistory returns the latest limit messages of a user, oldest first
func (r *Repository) ListChatHistory(ctx context.Context, userID int64, limit int) ([]model.ChatHistoryEntry, error) {
	query := r.db.Rebind(`
		SELECT user_id, message, is_user_message, timestamp
		FROM chat_history
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`)

	entries := []model.ChatHistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
