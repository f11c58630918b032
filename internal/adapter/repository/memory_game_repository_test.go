package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/pkg/errors"
)

func seedGames(t *testing.T, titles map[string]string) *memoryGameRepository {
	t.Helper()
	repo := NewMemoryGameRepository().(*memoryGameRepository)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	for title, category := range titles {
		i++
		game := &entity.Game{Title: title, Category: category, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(context.Background(), game))
	}
	return repo
}

func TestMemoryGameCategoriesPreserveCase(t *testing.T) {
	repo := seedGames(t, map[string]string{"A": "Puzzle", "B": "puzzle", "C": "Action"})
	ctx := context.Background()

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Puzzle", "puzzle", "Action"}, categories)

	games, err := repo.ListByCategory(ctx, "PUZZLE")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = repo.ListByCategory(ctx, "Puzz")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestMemoryGameSearchByTitle(t *testing.T) {
	repo := seedGames(t, map[string]string{"Space Zed": "", "Zed Returns": "", "Other": ""})
	ctx := context.Background()

	games, err := repo.SearchByTitle(ctx, "zED")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = repo.SearchByTitle(ctx, "")
	require.NoError(t, err)
	assert.Len(t, games, 3)

	// regex metacharacters are literal text
	games, err = repo.SearchByTitle(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestMemoryGameListLatestNewestFirst(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 60; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Game{Title: "g", CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}

	games, err := repo.ListLatest(ctx, 50)
	require.NoError(t, err)
	require.Len(t, games, 50)
	for i := 1; i < len(games); i++ {
		assert.False(t, games[i].CreatedAt.After(games[i-1].CreatedAt))
	}
}

func TestMemoryGameIDRules(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-an-id")
	assert.True(t, errors.Is(err, "INVALID_ID"))
	assert.True(t, errors.Is(repo.Update(ctx, "zzz", map[string]interface{}{"title": "x"}), "INVALID_ID"))
	assert.True(t, errors.Is(repo.Delete(ctx, "123"), "INVALID_ID"))

	missing := "65f0c0ffee0000000000abcd"
	_, err = repo.GetByID(ctx, missing)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.True(t, errors.Is(repo.Update(ctx, missing, map[string]interface{}{"title": "x"}), "NOT_FOUND"))
	assert.True(t, errors.Is(repo.Delete(ctx, missing), "NOT_FOUND"))
}

func TestMemoryGameUpdateReplacesFields(t *testing.T) {
	repo := NewMemoryGameRepository()
	ctx := context.Background()

	game := &entity.Game{Title: "Old", Category: "Puzzle", Extra: map[string]interface{}{"rating": 3}}
	require.NoError(t, repo.Create(ctx, game))

	require.NoError(t, repo.Update(ctx, game.ID, map[string]interface{}{"title": "New", "rating": 5}))

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "Puzzle", got.Category)
	assert.Equal(t, 5, got.Extra["rating"])
}
