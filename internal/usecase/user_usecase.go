package usecase

import (
	"context"
	"strings"
	"time"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
	"gamecatalog/pkg/normalize"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

type GetOrCreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// GetOrCreate returns the user stored under the email, creating it first
// when absent. A concurrent insert of the same email resolves to the
// stored record.
func (uc *UserUseCase) GetOrCreate(ctx context.Context, input GetOrCreateUserInput) (*entity.User, error) {
	email := normalize.Email(input.Email)
	if email == "" {
		return nil, errors.BadRequest("email is required", nil)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, errors.Internal("Failed to look up user", err)
	}

	user := &entity.User{
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, "CONFLICT") {
			logger.Debug("User %s created concurrently, returning stored record", email)
			return uc.userRepo.GetByEmail(ctx, email)
		}
		return nil, errors.Internal("Failed to create user", err)
	}

	logger.Info("User created: %s", user.ID)
	return user, nil
}

func (uc *UserUseCase) Count(ctx context.Context) (int64, error) {
	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return total, nil
}
