package service

import (
	"context"
	"fmt"
	"time"

	"shopchat/internal/model"
)

// HistoryLimit is the number of messages returned by History
const HistoryLimit = 50

// HistoryService records and replays chat conversations
type HistoryService struct {
	store HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a new history service
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

// Save stores one message. An empty timestamp means now; otherwise it must
// be RFC 3339.
func (s *HistoryService) Save(ctx context.Context, req model.SaveHistoryRequest) error {
	if req.UserID == nil || req.Message == nil || req.IsUserMessage == nil {
		return ErrInvalidInput
	}

	ts := s.now().UTC()
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339Nano, *req.Timestamp)
		if err != nil {
			return fmt.Errorf("%w: timestamp: %v", ErrInvalidInput, err)
		}
		ts = parsed.UTC()
	}

	return s.store.SaveChatEntry(ctx, model.ChatHistoryEntry{
		UserID:        *req.UserID,
		Message:       *req.Message,
		IsUserMessage: *req.IsUserMessage,
		Timestamp:     ts,
	})
}

// History returns the most recent messages of a user, oldest first
func (s *HistoryService) History(ctx context.Context, userID int64) ([]model.ChatHistoryEntry, error) {
	return s.store.ListChatHistory(ctx, userID, HistoryLimit)
}
