package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type firestoreSubscriberRepository struct {
	client *firestore.Client
}

func NewFirestoreSubscriberRepository(client *firestore.Client) repository.SubscriberRepository {
	return &firestoreSubscriberRepository{
		client: client,
	}
}

func (r *firestoreSubscriberRepository) subscribers() *firestore.CollectionRef {
	return r.client.Collection("subscribers")
}

func (r *firestoreSubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	docs, err := collectDocuments(r.subscribers().OrderBy("subscribedAt", firestore.Asc).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query subscribers", err)
	}

	subscribers := make([]*entity.Subscriber, 0, len(docs))
	for _, doc := range docs {
		var subscriber entity.Subscriber
		if err := doc.DataTo(&subscriber); err != nil {
			return nil, errors.Internal("Failed to parse subscriber data", err)
		}
		subscriber.ID = doc.Ref.ID
		subscribers = append(subscribers, &subscriber)
	}
	return subscribers, nil
}

func (r *firestoreSubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	doc, err := r.subscribers().Doc(emailKey(email)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Subscriber", err)
		}
		return nil, errors.Internal("Failed to get subscriber", err)
	}

	var subscriber entity.Subscriber
	if err := doc.DataTo(&subscriber); err != nil {
		return nil, errors.Internal("Failed to parse subscriber data", err)
	}
	subscriber.ID = doc.Ref.ID
	return &subscriber, nil
}

func (r *firestoreSubscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	ref := r.subscribers().Doc(emailKey(subscriber.Email))
	if _, err := ref.Create(ctx, subscriber); err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Email already subscribed", err)
		}
		return errors.Internal("Failed to create subscriber", err)
	}

	subscriber.ID = ref.ID
	return nil
}
