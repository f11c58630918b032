package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type memoryAdRepository struct {
	mu  sync.RWMutex
	seq int
	ads map[string]*memoryAd
}

type memoryAd struct {
	seq int
	ad  entity.Ad
}

func NewMemoryAdRepository() repository.AdRepository {
	return &memoryAdRepository{
		ads: map[string]*memoryAd{},
	}
}

func (r *memoryAdRepository) List(ctx context.Context) ([]*entity.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]*memoryAd, 0, len(r.ads))
	for _, a := range r.ads {
		stored = append(stored, a)
	}

	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if !a.ad.CreatedAt.Equal(b.ad.CreatedAt) {
			return a.ad.CreatedAt.After(b.ad.CreatedAt)
		}
		return a.seq > b.seq
	})

	ads := make([]*entity.Ad, len(stored))
	for i, a := range stored {
		ad := a.ad
		ads[i] = &ad
	}
	return ads, nil
}

func (r *memoryAdRepository) GetByID(ctx context.Context, id string) (*entity.Ad, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, errors.InvalidID("ad", id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.ads[id]
	if !ok {
		return nil, errors.NotFound("Ad", nil)
	}
	ad := stored.ad
	return &ad, nil
}

func (r *memoryAdRepository) Create(ctx context.Context, ad *entity.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ad.ID = bson.NewObjectID().Hex()
	r.seq++
	r.ads[ad.ID] = &memoryAd{seq: r.seq, ad: *ad}
	return nil
}

func (r *memoryAdRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return errors.InvalidID("ad", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.ads[id]
	if !ok {
		return errors.NotFound("Ad", nil)
	}

	for key, value := range fields {
		s, _ := value.(string)
		switch key {
		case "title":
			stored.ad.Title = s
		case "type":
			stored.ad.Type = s
		case "position":
			stored.ad.Position = s
		case "image":
			stored.ad.Image = s
		case "link":
			stored.ad.Link = s
		case "content":
			stored.ad.Content = s
		case "createdAt":
			if t, ok := value.(time.Time); ok {
				stored.ad.CreatedAt = t
			}
		}
	}
	return nil
}

func (r *memoryAdRepository) Delete(ctx context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return errors.InvalidID("ad", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ads[id]; !ok {
		return errors.NotFound("Ad", nil)
	}
	delete(r.ads, id)
	return nil
}
