package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
}

func NewMemoryUserRepository() repository.UserRepository {
	return &memoryUserRepository{
		byEmail: map[string]entity.User{},
	}
}

func (r *memoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byEmail)), nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return &user, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return errors.Conflict("User with this email already exists", nil)
	}

	user.ID = bson.NewObjectID().Hex()
	r.byEmail[user.Email] = *user
	return nil
}
