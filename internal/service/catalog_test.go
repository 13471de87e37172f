package service

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducts(t *testing.T) {
	products := GenerateProducts(rand.New(rand.NewSource(1)), 105)
	require.Len(t, products, 105)

	for _, p := range products {
		assert.Contains(t, catalogCategories, p.Category)
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 2000.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.LessOrEqual(t, p.Stock, 200)
		assert.Contains(t, p.Name, " Model ")
		require.NotNil(t, p.Description)
		assert.True(t, strings.HasPrefix(*p.Description, "A high-quality "+p.Name))
		require.NotNil(t, p.ImageURL)
		assert.True(t, strings.HasPrefix(*p.ImageURL, "https://picsum.photos/seed/"))
	}

	again := GenerateProducts(rand.New(rand.NewSource(1)), 105)
	assert.Equal(t, products, again)
}

func TestCatalogSeeder_SeedIfEmpty(t *testing.T) {
	store := &fakeCatalogStore{}
	seeder := NewCatalogSeeder(store, rand.New(rand.NewSource(7)), zerolog.Nop())

	n, err := seeder.SeedIfEmpty(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = seeder.SeedIfEmpty(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, store.inserted, 10)
}
