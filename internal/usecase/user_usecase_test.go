package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/adapter/repository"
	"gamecatalog/pkg/errors"
)

func TestUserGetOrCreateIsIdempotent(t *testing.T) {
	uc := NewUserUseCase(repository.NewMemoryUserRepository())
	ctx := context.Background()

	first, err := uc.GetOrCreate(ctx, GetOrCreateUserInput{Name: "Ana", Email: "Ana@Example.com "})
	require.NoError(t, err)
	second, err := uc.GetOrCreate(ctx, GetOrCreateUserInput{Email: "ana@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana", second.Name)

	total, err := uc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSubscribeRejectsDuplicates(t *testing.T) {
	uc := NewSubscriberUseCase(repository.NewMemorySubscriberRepository())
	ctx := context.Background()

	_, err := uc.Subscribe(ctx, SubscribeInput{Email: "fan@example.com"})
	require.NoError(t, err)

	_, err = uc.Subscribe(ctx, SubscribeInput{Email: "FAN@example.com"})
	assert.True(t, errors.Is(err, "ALREADY_SUBSCRIBED"))

	_, err = uc.Subscribe(ctx, SubscribeInput{Email: ""})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
