package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type memorySubscriberRepository struct {
	mu          sync.RWMutex
	subscribers []entity.Subscriber
}

func NewMemorySubscriberRepository() repository.SubscriberRepository {
	return &memorySubscriberRepository{}
}

func (r *memorySubscriberRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subscribers := make([]*entity.Subscriber, len(r.subscribers))
	for i := range r.subscribers {
		s := r.subscribers[i]
		subscribers[i] = &s
	}
	return subscribers, nil
}

func (r *memorySubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subscribers {
		if s.Email == email {
			found := s
			return &found, nil
		}
	}
	return nil, errors.NotFound("Subscriber", nil)
}

func (r *memorySubscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subscribers {
		if s.Email == subscriber.Email {
			return errors.Conflict("Email already subscribed", nil)
		}
	}

	subscriber.ID = bson.NewObjectID().Hex()
	r.subscribers = append(r.subscribers, *subscriber)
	return nil
}
