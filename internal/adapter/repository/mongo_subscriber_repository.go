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

type subscriberDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	SubscribedAt time.Time     `bson:"subscribedAt"`
}

func (d subscriberDocument) toEntity() *entity.Subscriber {
	return &entity.Subscriber{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		SubscribedAt: d.SubscribedAt,
	}
}

type mongoSubscriberRepository struct {
	coll *mongo.Collection
}

func NewMongoSubscriberRepository(coll *mongo.Collection) repository.SubscriberRepository {
	return &mongoSubscriberRepository{
		coll: coll,
	}
}

// List returns subscribers in the order they subscribed.
func (r *mongoSubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to query subscribers", err)
	}

	var docs []subscriberDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode subscribers", err)
	}

	subscribers := make([]*entity.Subscriber, 0, len(docs))
	for _, doc := range docs {
		subscribers = append(subscribers, doc.toEntity())
	}
	return subscribers, nil
}

func (r *mongoSubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var doc subscriberDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Subscriber", err)
		}
		return nil, errors.Internal("Failed to get subscriber", err)
	}
	return doc.toEntity(), nil
}

func (r *mongoSubscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	doc := subscriberDocument{
		ID:           bson.NewObjectID(),
		Email:        subscriber.Email,
		SubscribedAt: subscriber.SubscribedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Email already subscribed", err)
		}
		return errors.Internal("Failed to create subscriber", err)
	}

	subscriber.ID = doc.ID.Hex()
	return nil
}
