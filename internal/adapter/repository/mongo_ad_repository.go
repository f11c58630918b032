package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type adDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Title     string        `bson:"title"`
	Type      string        `bson:"type"`
	Position  string        `bson:"position"`
	Image     string        `bson:"image,omitempty"`
	Link      string        `bson:"link,omitempty"`
	Content   string        `bson:"content,omitempty"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d adDocument) toEntity() *entity.Ad {
	return &entity.Ad{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Type:      d.Type,
		Position:  d.Position,
		Image:     d.Image,
		Link:      d.Link,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}
}

type mongoAdRepository struct {
	coll *mongo.Collection
}

func NewMongoAdRepository(coll *mongo.Collection) repository.AdRepository {
	return &mongoAdRepository{
		coll: coll,
	}
}

func (r *mongoAdRepository) List(ctx context.Context) ([]*entity.Ad, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Internal("Failed to query ads", err)
	}

	var docs []adDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode ads", err)
	}

	ads := make([]*entity.Ad, 0, len(docs))
	for _, doc := range docs {
		ads = append(ads, doc.toEntity())
	}
	return ads, nil
}

func (r *mongoAdRepository) GetByID(ctx context.Context, id string) (*entity.Ad, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.InvalidID("ad", id)
	}

	var doc adDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Ad", err)
		}
		return nil, errors.Internal("Failed to get ad", err)
	}

	return doc.toEntity(), nil
}

func (r *mongoAdRepository) Create(ctx context.Context, ad *entity.Ad) error {
	doc := adDocument{
		ID:        bson.NewObjectID(),
		Title:     ad.Title,
		Type:      ad.Type,
		Position:  ad.Position,
		Image:     ad.Image,
		Link:      ad.Link,
		Content:   ad.Content,
		CreatedAt: ad.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return errors.Internal("Failed to create ad", err)
	}

	ad.ID = doc.ID.Hex()
	return nil
}

func (r *mongoAdRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.InvalidID("ad", id)
	}

	result, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return errors.Internal("Failed to update ad", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Ad", nil)
	}

	return nil
}

func (r *mongoAdRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.InvalidID("ad", id)
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return errors.Internal("Failed to delete ad", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Ad", nil)
	}

	return nil
}
