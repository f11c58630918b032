package usecase

import (
	"context"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/adapter/repository"
	"gamecatalog/internal/domain/entity"
)

func parseSitemap(t *testing.T, body []byte) sitemapURLSet {
	t.Helper()
	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	return set
}

func TestSitemapEmptyStore(t *testing.T) {
	uc := NewSitemapUseCase(repository.NewMemoryGameRepository(), "https://games.example.com/")

	body, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(body), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	set := parseSitemap(t, body)
	require.Len(t, set.URLs, 4)
	assert.Equal(t, "https://games.example.com/", set.URLs[0].Loc)
	assert.Equal(t, "https://games.example.com/subscribe", set.URLs[3].Loc)
}

func TestSitemapCategoriesAndGames(t *testing.T) {
	games := repository.NewMemoryGameRepository()
	ctx := context.Background()
	created := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)
	require.NoError(t, games.Create(ctx, &entity.Game{Title: "Zed", Category: "Role Playing", CreatedAt: created}))
	require.NoError(t, games.Create(ctx, &entity.Game{Title: "Undated"}))

	uc := NewSitemapUseCase(games, "https://games.example.com")
	uc.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }

	body, err := uc.Generate(ctx)
	require.NoError(t, err)

	set := parseSitemap(t, body)
	require.Len(t, set.URLs, 7)
	assert.Equal(t, "https://games.example.com/category/Role%20Playing", set.URLs[4].Loc)

	lastMods := map[string]bool{}
	for _, u := range set.URLs[5:] {
		assert.Contains(t, u.Loc, "https://games.example.com/game/")
		lastMods[u.LastMod] = true
	}
	assert.True(t, lastMods["2024-02-29"])
	assert.True(t, lastMods["2025-01-02"])
}
