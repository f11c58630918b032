package usecase

import (
	"context"
	"net/http"
	"time"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
	"gamecatalog/pkg/normalize"
)

type SubscriberUseCase struct {
	subscriberRepo repository.SubscriberRepository
	now            func() time.Time
}

func NewSubscriberUseCase(subscriberRepo repository.SubscriberRepository) *SubscriberUseCase {
	return &SubscriberUseCase{
		subscriberRepo: subscriberRepo,
		now:            time.Now,
	}
}

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

func alreadySubscribed(err error) error {
	return errors.New("ALREADY_SUBSCRIBED", "Email already subscribed", http.StatusBadRequest, err)
}

// Subscribe rejects an email that is already subscribed.
func (uc *SubscriberUseCase) Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error) {
	email := normalize.Email(input.Email)
	if email == "" {
		return nil, errors.BadRequest("email is required", nil)
	}

	if _, err := uc.subscriberRepo.GetByEmail(ctx, email); err == nil {
		return nil, alreadySubscribed(nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, errors.Internal("Failed to look up subscriber", err)
	}

	subscriber := &entity.Subscriber{
		Email:        email,
		SubscribedAt: uc.now().UTC(),
	}
	if err := uc.subscriberRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, "CONFLICT") {
			return nil, alreadySubscribed(err)
		}
		return nil, errors.Internal("Failed to subscribe", err)
	}

	logger.Info("New subscriber: %s", subscriber.ID)
	return subscriber, nil
}
