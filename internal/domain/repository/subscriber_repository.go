package repository

import (
	"context"

	"gamecatalog/internal/domain/entity"
)

// SubscriberRepository.Create returns a CONFLICT error when the email is taken.
type SubscriberRepository interface {
	List(ctx context.Context) ([]*entity.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	Create(ctx context.Context, subscriber *entity.Subscriber) error
}
