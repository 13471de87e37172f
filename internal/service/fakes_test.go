package service

import (
	"context"
	"errors"
	"sync"

	"shopchat/internal/model"
	"shopchat/internal/repository"
)

type fakeProductStore struct {
	products []model.Product
	err      error
	calls    int
	filters  []model.ProductFilter
}

func (f *fakeProductStore) QueryProducts(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	f.calls++
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProductStore) GetProductByID(_ context.Context, id int64) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
	next  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, hash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[username]; ok {
		return 0, repository.ErrDuplicateUsername
	}
	f.next++
	f.users[username] = &model.User{ID: f.next, Username: username, PasswordHash: hash}
	return f.next, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type fakeHistoryStore struct {
	entries []model.ChatHistoryEntry
	limit   int
}

func (f *fakeHistoryStore) SaveChatEntry(_ context.Context, e model.ChatHistoryEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeHistoryStore) ListChatHistory(_ context.Context, userID int64, limit int) ([]model.ChatHistoryEntry, error) {
	f.limit = limit
	out := []model.ChatHistoryEntry{}
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCatalogStore struct {
	count    int
	inserted []model.Product
}

func (f *fakeCatalogStore) CountProducts(context.Context) (int, error) { return f.count, nil }

func (f *fakeCatalogStore) InsertProducts(_ context.Context, p []model.Product) (int, error) {
	f.inserted = append(f.inserted, p...)
	f.count += len(p)
	return len(p), nil
}

var errBoom = errors.New("boom")
