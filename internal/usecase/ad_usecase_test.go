package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/adapter/repository"
	"gamecatalog/pkg/errors"
)

func TestAdCreateTypeConditionalFields(t *testing.T) {
	uc := NewAdUseCase(repository.NewMemoryAdRepository())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateAdInput
		code  string
	}{
		{"image without image", CreateAdInput{Title: "A", Type: "image", Position: "top", Link: "https://x.test"}, "BAD_REQUEST"},
		{"image without link", CreateAdInput{Title: "A", Type: "image", Position: "top", Image: "https://x.test/a.png"}, "BAD_REQUEST"},
		{"code without content", CreateAdInput{Title: "A", Type: "code", Position: "side"}, "BAD_REQUEST"},
		{"unknown type", CreateAdInput{Title: "A", Type: "video", Position: "side"}, "BAD_REQUEST"},
		{"missing position", CreateAdInput{Title: "A", Type: "code", Content: "<div/>"}, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}

	ad, err := uc.Create(ctx, CreateAdInput{Title: "A", Type: "code", Position: "side", Content: "<div/>"})
	require.NoError(t, err)
	assert.NotEmpty(t, ad.ID)
	assert.False(t, ad.CreatedAt.IsZero())
}

func TestAdUpdateKeepsInvariants(t *testing.T) {
	uc := NewAdUseCase(repository.NewMemoryAdRepository())
	ctx := context.Background()

	ad, err := uc.Create(ctx, CreateAdInput{Title: "A", Type: "code", Position: "side", Content: "<div/>"})
	require.NoError(t, err)

	// switching to image without image and link breaks the invariant
	assert.True(t, errors.Is(uc.Update(ctx, ad.ID, map[string]interface{}{"type": "image"}), "BAD_REQUEST"))
	assert.True(t, errors.Is(uc.Update(ctx, ad.ID, map[string]interface{}{"createdAt": "x"}), "BAD_REQUEST"))
	assert.True(t, errors.Is(uc.Update(ctx, ad.ID, map[string]interface{}{"title": 5}), "BAD_REQUEST"))
	assert.True(t, errors.Is(uc.Update(ctx, "nope", map[string]interface{}{"title": "B"}), "INVALID_ID"))

	require.NoError(t, uc.Update(ctx, ad.ID, map[string]interface{}{
		"type":  "image",
		"image": "https://cdn.test/a.png",
		"link":  "https://shop.test",
	}))

	got, err := uc.GetByID(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "image", got.Type)
	assert.Equal(t, "https://shop.test", got.Link)
}
