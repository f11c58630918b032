package repository

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type mongoGameRepository struct {
	coll *mongo.Collection
}

func NewMongoGameRepository(coll *mongo.Collection) repository.GameRepository {
	return &mongoGameRepository{
		coll: coll,
	}
}

func (r *mongoGameRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Internal("Failed to count games", err)
	}
	return total, nil
}

func (r *mongoGameRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Game, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return r.find(ctx, bson.D{}, opts)
}

func (r *mongoGameRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Game, error) {
	filter := bson.D{}
	if strings.TrimSpace(title) != "" {
		filter = bson.D{{Key: entity.GameFieldTitle, Value: containsFold(title)}}
	}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

func (r *mongoGameRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Game, error) {
	filter := bson.D{{Key: entity.GameFieldCategory, Value: equalFold(category)}}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

func (r *mongoGameRepository) Categories(ctx context.Context) ([]string, error) {
	// Skip documents without a usable category so the result decodes as strings.
	filter := bson.D{{Key: entity.GameFieldCategory, Value: bson.D{
		{Key: "$type", Value: "string"},
		{Key: "$ne", Value: ""},
	}}}

	var categories []string
	if err := r.coll.Distinct(ctx, entity.GameFieldCategory, filter).Decode(&categories); err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *mongoGameRepository) ListForSitemap(ctx context.Context) ([]*entity.Game, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetProjection(bson.D{
			{Key: entity.GameFieldTitle, Value: 1},
			{Key: entity.GameFieldCategory, Value: 1},
			{Key: entity.GameFieldCreatedAt, Value: 1},
		})
	return r.find(ctx, bson.D{}, opts)
}

func (r *mongoGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.InvalidID("game", id)
	}

	var doc bson.M
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Game", err)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	return gameFromBSON(doc), nil
}

func (r *mongoGameRepository) Create(ctx context.Context, game *entity.Game) error {
	oid := bson.NewObjectID()
	doc := game.Fields()
	doc["_id"] = oid

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return errors.Internal("Failed to create game", err)
	}

	game.ID = oid.Hex()
	return nil
}

func (r *mongoGameRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.InvalidID("game", id)
	}

	result, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return errors.Internal("Failed to update game", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Game", nil)
	}

	return nil
}

func (r *mongoGameRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.InvalidID("game", id)
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return errors.Internal("Failed to delete game", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Game", nil)
	}

	return nil
}

func (r *mongoGameRepository) find(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOptions]) ([]*entity.Game, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Internal("Failed to query games", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode games", err)
	}

	games := make([]*entity.Game, 0, len(docs))
	for _, doc := range docs {
		games = append(games, gameFromBSON(doc))
	}
	return games, nil
}

func gameFromBSON(doc bson.M) *entity.Game {
	var id string
	switch v := doc["_id"].(type) {
	case bson.ObjectID:
		id = v.Hex()
	case string:
		id = v
	}
	delete(doc, "_id")
	return entity.GameFromDocument(id, normalizeMap(doc))
}
