package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type memoryGame struct {
	seq  int
	game entity.Game
}

// memoryGameRepository keeps games in process. Ids have the same shape and
// validation rules as the Mongo backend.
type memoryGameRepository struct {
	mu    sync.RWMutex
	seq   int
	games map[string]*memoryGame
}

func NewMemoryGameRepository() repository.GameRepository {
	return &memoryGameRepository{
		games: map[string]*memoryGame{},
	}
}

func (r *memoryGameRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.games)), nil
}

func (r *memoryGameRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Game, error) {
	games := r.filter(nil)
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

func (r *memoryGameRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Game, error) {
	needle := strings.ToLower(strings.TrimSpace(title))
	return r.filter(func(g *entity.Game) bool {
		return needle == "" || strings.Contains(strings.ToLower(g.Title), needle)
	}), nil
}

func (r *memoryGameRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Game, error) {
	return r.filter(func(g *entity.Game) bool {
		return strings.EqualFold(g.Category, category)
	}), nil
}

func (r *memoryGameRepository) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, game := range r.filter(nil) {
		if game.Category == "" || seen[game.Category] {
			continue
		}
		seen[game.Category] = true
		categories = append(categories, game.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *memoryGameRepository) ListForSitemap(ctx context.Context) ([]*entity.Game, error) {
	games := r.filter(nil)
	for _, game := range games {
		game.Thumbnail = ""
		game.Extra = map[string]interface{}{}
	}
	return games, nil
}

func (r *memoryGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, errors.InvalidID("game", id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.games[id]
	if !ok {
		return nil, errors.NotFound("Game", nil)
	}
	return copyGame(&stored.game), nil
}

func (r *memoryGameRepository) Create(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game.ID = bson.NewObjectID().Hex()
	r.seq++
	r.games[game.ID] = &memoryGame{seq: r.seq, game: *copyGame(game)}
	return nil
}

func (r *memoryGameRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return errors.InvalidID("game", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.games[id]
	if !ok {
		return errors.NotFound("Game", nil)
	}

	merged := stored.game.Fields()
	for key, value := range fields {
		merged[key] = value
	}
	stored.game = *entity.GameFromDocument(id, merged)
	return nil
}

func (r *memoryGameRepository) Delete(ctx context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return errors.InvalidID("game", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return errors.NotFound("Game", nil)
	}
	delete(r.games, id)
	return nil
}

// filter returns copies of the matching games, newest first.
func (r *memoryGameRepository) filter(keep func(*entity.Game) bool) []*entity.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]*memoryGame, 0, len(r.games))
	for _, g := range r.games {
		if keep == nil || keep(&g.game) {
			stored = append(stored, g)
		}
	}

	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if !a.game.CreatedAt.Equal(b.game.CreatedAt) {
			return a.game.CreatedAt.After(b.game.CreatedAt)
		}
		return a.seq > b.seq
	})

	games := make([]*entity.Game, len(stored))
	for i, g := range stored {
		games[i] = copyGame(&g.game)
	}
	return games
}

func copyGame(g *entity.Game) *entity.Game {
	cp := *g
	cp.Extra = make(map[string]interface{}, len(g.Extra))
	for key, value := range g.Extra {
		cp.Extra[key] = value
	}
	return &cp
}
