package repository

import (
	"context"

	"gamecatalog/internal/domain/entity"
)

// GameRepository returns games newest first unless stated otherwise.
// GetByID, Update and Delete reject malformed ids before reaching the store.
type GameRepository interface {
	Count(ctx context.Context) (int64, error)
	ListLatest(ctx context.Context, limit int) ([]*entity.Game, error)
	// SearchByTitle matches a case-insensitive substring; an empty title
	// matches every game.
	SearchByTitle(ctx context.Context, title string) ([]*entity.Game, error)
	// ListByCategory matches the whole category case-insensitively.
	ListByCategory(ctx context.Context, category string) ([]*entity.Game, error)
	Categories(ctx context.Context) ([]string, error)
	// ListForSitemap returns every game with only id, title, category and
	// createdAt populated.
	ListForSitemap(ctx context.Context) ([]*entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Create(ctx context.Context, game *entity.Game) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
