package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/infrastructure/mongodb"
	"gamecatalog/pkg/errors"
)

// A nil collection proves malformed ids are rejected before any store access.
func TestMongoRejectsMalformedIDsWithoutStoreAccess(t *testing.T) {
	games := NewMongoGameRepository(nil)
	ads := NewMongoAdRepository(nil)
	ctx := context.Background()

	for _, id := range []string{"", "abc", "65f0c0ffee0000000000abcZ", "65f0c0ffee0000000000abcd00"} {
		_, err := games.GetByID(ctx, id)
		assert.True(t, errors.Is(err, "INVALID_ID"), "game get %q", id)
		assert.True(t, errors.Is(games.Update(ctx, id, map[string]interface{}{"title": "x"}), "INVALID_ID"))
		assert.True(t, errors.Is(games.Delete(ctx, id), "INVALID_ID"))

		_, err = ads.GetByID(ctx, id)
		assert.True(t, errors.Is(err, "INVALID_ID"), "ad get %q", id)
		assert.True(t, errors.Is(ads.Update(ctx, id, map[string]interface{}{"title": "x"}), "INVALID_ID"))
		assert.True(t, errors.Is(ads.Delete(ctx, id), "INVALID_ID"))
	}
}

func TestNormalizeValue(t *testing.T) {
	oid := bson.NewObjectID()
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	out := normalizeValue(bson.M{
		"ref":     oid,
		"when":    bson.NewDateTimeFromTime(when),
		"nested":  bson.D{{Key: "k", Value: "v"}},
		"list":    bson.A{"a", bson.M{"x": 1}},
		"literal": 42,
	}).(map[string]interface{})

	assert.Equal(t, oid.Hex(), out["ref"])
	assert.True(t, when.Equal(out["when"].(time.Time)))
	assert.Equal(t, map[string]interface{}{"k": "v"}, out["nested"])
	assert.Equal(t, []interface{}{"a", map[string]interface{}{"x": 1}}, out["list"])
	assert.Equal(t, 42, out["literal"])
}

func setupMongo(t *testing.T) *mongodb.Client {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := mongodb.New(ctx, uri, "gamecatalog_test_"+time.Now().UTC().Format("20060102150405"))
	require.NoError(t, err)

	_ = c.Games().Drop(ctx)
	_ = c.Users().Drop(ctx)
	_ = c.Subscribers().Drop(ctx)
	require.NoError(t, c.CreateIndexes(ctx))

	t.Cleanup(func() {
		_ = c.Games().Drop(context.Background())
		_ = c.Users().Drop(context.Background())
		_ = c.Subscribers().Drop(context.Background())
		_ = c.Close(context.Background())
	})
	return c
}

func TestMongoGameLifecycle(t *testing.T) {
	c := setupMongo(t)
	repo := NewMongoGameRepository(c.Games())
	ctx := context.Background()

	for _, category := range []string{"Puzzle", "puzzle", "Action"} {
		game := entity.NewGameFromFields(map[string]interface{}{"title": category + " game", "category": category, "rating": 4})
		game.CreatedAt = time.Now().UTC()
		require.NoError(t, repo.Create(ctx, game))
	}

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Puzzle", "puzzle", "Action"}, categories)

	games, err := repo.ListByCategory(ctx, "puzzle")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = repo.SearchByTitle(ctx, "ACTION")
	require.NoError(t, err)
	require.Len(t, games, 1)

	got, err := repo.GetByID(ctx, games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Action game", got.Title)
	assert.EqualValues(t, 4, got.Extra["rating"])

	require.NoError(t, repo.Update(ctx, got.ID, map[string]interface{}{"title": "Renamed"}))
	require.NoError(t, repo.Delete(ctx, got.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, got.ID), "NOT_FOUND"))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestMongoUniqueEmails(t *testing.T) {
	c := setupMongo(t)
	users := NewMongoUserRepository(c.Users())
	subscribers := NewMongoSubscriberRepository(c.Subscribers())
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{Email: "dup@example.com", CreatedAt: time.Now()}))
	assert.True(t, errors.Is(users.Create(ctx, &entity.User{Email: "dup@example.com", CreatedAt: time.Now()}), "CONFLICT"))

	require.NoError(t, subscribers.Create(ctx, &entity.Subscriber{Email: "dup@example.com", SubscribedAt: time.Now()}))
	assert.True(t, errors.Is(subscribers.Create(ctx, &entity.Subscriber{Email: "dup@example.com", SubscribedAt: time.Now()}), "CONFLICT"))
}
