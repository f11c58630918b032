package repository

import (
	"context"

	"gamecatalog/internal/domain/entity"
)

// UserRepository.Create returns a CONFLICT error when the email is taken.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
