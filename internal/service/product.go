package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shopchat/internal/cache"
	"shopchat/internal/model"

	"github.com/rs/zerolog"
)

const productCachePrefix = "products:"

// ProductService serves catalog listings, optionally through a cache
type ProductService struct {
	store ProductStore
	cache cache.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewProductService creates a product service. A nil cache or a zero ttl
// disables caching.
func NewProductService(store ProductStore, c cache.Client, ttl time.Duration, log zerolog.Logger) *ProductService {
	return &ProductService{
		store: store,
		cache: c,
		ttl:   ttl,
		log:   log.With().Str("component", "products").Logger(),
	}
}

// List returns the products matching filter
func (s *ProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.cache == nil || s.ttl <= 0 {
		return s.store.QueryProducts(ctx, filter)
	}

	key, err := json.Marshal(filter)
	if err != nil {
		return s.store.QueryProducts(ctx, filter)
	}
	cacheKey := productCachePrefix + string(key)

	if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
		var products []model.Product
		if err := json.Unmarshal(raw, &products); err == nil {
			return products, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn().Err(err).Msg("product cache read failed")
	}

	products, err := s.store.QueryProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(products); err == nil {
		if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	return products, nil
}

// Get returns one product; repository.ErrNotFound when absent
func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.store.GetProductByID(ctx, id)
}
