package repository

import (
	"context"

	"gamecatalog/internal/domain/entity"
)

type AdRepository interface {
	List(ctx context.Context) ([]*entity.Ad, error)
	GetByID(ctx context.Context, id string) (*entity.Ad, error)
	Create(ctx context.Context, ad *entity.Ad) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
