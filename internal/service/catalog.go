package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"shopchat/internal/model"

	"github.com/rs/zerolog"
)

var (
	catalogCategories = []string{"Electronics", "Books", "Clothing", "Home & Kitchen", "Sports", "Toys"}
	productAdjectives = []string{"Premium", "Budget", "High-Performance", "Eco-Friendly", "Compact", "Durable", "Smart"}
	productNouns      = []string{
		"Laptop", "Smartphone", "Headphones", "Keyboard", "Mouse", "Monitor", "Charger", "Speaker",
		"Novel", "Textbook", "Cookbook", "T-Shirt", "Jeans", "Jacket", "Blender", "Toaster",
		"Coffee Maker", "Dumbbells", "Yoga Mat", "Action Figure", "Board Game",
	}
)

// CatalogSeeder fills an empty catalog with demo products
type CatalogSeeder struct {
	store CatalogStore
	rng   *rand.Rand
	log   zerolog.Logger
}

// NewCatalogSeeder creates a seeder drawing from rng
func NewCatalogSeeder(store CatalogStore, rng *rand.Rand, log zerolog.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		store: store,
		rng:   rng,
		log:   log.With().Str("component", "catalog").Logger(),
	}
}

// SeedIfEmpty inserts n generated products when the catalog has none and
// returns how many were inserted.
func (s *CatalogSeeder) SeedIfEmpty(ctx context.Context, n int) (int, error) {
	count, err := s.store.CountProducts(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info().Int("products", count).Msg("products table already populated")
		return 0, nil
	}

	inserted, err := s.store.InsertProducts(ctx, GenerateProducts(s.rng, n))
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	s.log.Info().Int("products", inserted).Msg("products populated")
	return inserted, nil
}

// GenerateProducts builds n random demo products
func GenerateProducts(rng *rand.Rand, n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		adj := productAdjectives[rng.Intn(len(productAdjectives))]
		noun := productNouns[rng.Intn(len(productNouns))]
		name := fmt.Sprintf("%s %s Model %d", adj, noun, 100+rng.Intn(900))
		category := catalogCategories[rng.Intn(len(catalogCategories))]
		price := math.Round((10+rng.Float64()*1990)*100) / 100
		stock := rng.Intn(201)

		description := fmt.Sprintf(
			"A high-quality %s from the %s category. Perfect for your needs. "+
				"Features include: feature A, feature B, and outstanding feature C. Only %d left in stock!",
			name, category, stock,
		)
		imageURL := fmt.Sprintf("https://picsum.photos/seed/%s_%d/600/400", strings.ReplaceAll(name, " ", "_"), i)

		products = append(products, model.Product{
			Name:        name,
			Category:    category,
			Price:       price,
			Stock:       stock,
			Description: &description,
			ImageURL:    &imageURL,
		})
	}
	return products
}
