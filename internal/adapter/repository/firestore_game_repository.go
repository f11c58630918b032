package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

func (r *firestoreGameRepository) games() *firestore.CollectionRef {
	return r.client.Collection("games")
}

func (r *firestoreGameRepository) newestFirst() firestore.Query {
	return r.games().OrderBy(entity.GameFieldCreatedAt, firestore.Desc)
}

func (r *firestoreGameRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.games().NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count games", err)
	}
	total, ok := result["total"].(*firestorepb.Value)
	if !ok {
		return 0, errors.Internal("Failed to count games", fmt.Errorf("unexpected count result %T", result["total"]))
	}
	return total.GetIntegerValue(), nil
}

func (r *firestoreGameRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Game, error) {
	return r.query(ctx, r.newestFirst().Limit(limit), nil)
}

// Firestore has no substring or case-insensitive operators, so matching runs
// over the ordered result set.
func (r *firestoreGameRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Game, error) {
	needle := strings.ToLower(strings.TrimSpace(title))
	return r.query(ctx, r.newestFirst(), func(game *entity.Game) bool {
		return needle == "" || strings.Contains(strings.ToLower(game.Title), needle)
	})
}

func (r *firestoreGameRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Game, error) {
	return r.query(ctx, r.newestFirst(), func(game *entity.Game) bool {
		return strings.EqualFold(game.Category, category)
	})
}

func (r *firestoreGameRepository) Categories(ctx context.Context) ([]string, error) {
	docs, err := r.games().Select(entity.GameFieldCategory).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, doc := range docs {
		category, _ := doc.Data()[entity.GameFieldCategory].(string)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *firestoreGameRepository) ListForSitemap(ctx context.Context) ([]*entity.Game, error) {
	query := r.newestFirst().Select(entity.GameFieldTitle, entity.GameFieldCategory, entity.GameFieldCreatedAt)
	return r.query(ctx, query, nil)
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if !validFirestoreID(id) {
		return nil, errors.InvalidID("game", id)
	}

	doc, err := r.games().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Game", err)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	return entity.GameFromDocument(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	ref := r.games().NewDoc()
	if _, err := ref.Create(ctx, game.Fields()); err != nil {
		return errors.Internal("Failed to create game", err)
	}

	game.ID = ref.ID
	return nil
}

func (r *firestoreGameRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if !validFirestoreID(id) {
		return errors.InvalidID("game", id)
	}

	if _, err := r.games().Doc(id).Update(ctx, fieldUpdates(fields)); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Game", err)
		}
		return errors.Internal("Failed to update game", err)
	}
	return nil
}

func (r *firestoreGameRepository) Delete(ctx context.Context, id string) error {
	if !validFirestoreID(id) {
		return errors.InvalidID("game", id)
	}

	if _, err := r.games().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Game", err)
		}
		return errors.Internal("Failed to delete game", err)
	}
	return nil
}

func (r *firestoreGameRepository) query(ctx context.Context, query firestore.Query, keep func(*entity.Game) bool) ([]*entity.Game, error) {
	docs, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query games", err)
	}

	games := []*entity.Game{}
	for _, doc := range docs {
		game := entity.GameFromDocument(doc.Ref.ID, doc.Data())
		if keep == nil || keep(game) {
			games = append(games, game)
		}
	}
	return games, nil
}
