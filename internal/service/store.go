package service

import (
	"context"

	"shopchat/internal/model"
)

// ProductStore is the read side of the product catalog
type ProductStore interface {
	QueryProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int64) (*model.Product, error)
}

// CatalogStore is the write side used for seeding
type CatalogStore interface {
	CountProducts(ctx context.Context) (int, error)
	InsertProducts(ctx context.Context, products []model.Product) (int, error)
}

// UserStore persists accounts
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// HistoryStore persists chat messages
type HistoryStore interface {
	SaveChatEntry(ctx context.Context, entry model.ChatHistoryEntry) error
	ListChatHistory(ctx context.Context, userID int64, limit int) ([]model.ChatHistoryEntry, error)
}

// IntentParser turns a chat message into search criteria
type IntentParser interface {
	Parse(message string) model.Intent
}
