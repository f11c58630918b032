package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

type firestoreAdRepository struct {
	client *firestore.Client
}

func NewFirestoreAdRepository(client *firestore.Client) repository.AdRepository {
	return &firestoreAdRepository{
		client: client,
	}
}

func (r *firestoreAdRepository) ads() *firestore.CollectionRef {
	return r.client.Collection("ads")
}

func (r *firestoreAdRepository) List(ctx context.Context) ([]*entity.Ad, error) {
	docs, err := collectDocuments(r.ads().OrderBy("createdAt", firestore.Desc).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query ads", err)
	}

	ads := make([]*entity.Ad, 0, len(docs))
	for _, doc := range docs {
		var ad entity.Ad
		if err := doc.DataTo(&ad); err != nil {
			return nil, errors.Internal("Failed to parse ad data", err)
		}
		ad.ID = doc.Ref.ID
		ads = append(ads, &ad)
	}
	return ads, nil
}

func (r *firestoreAdRepository) GetByID(ctx context.Context, id string) (*entity.Ad, error) {
	if !validFirestoreID(id) {
		return nil, errors.InvalidID("ad", id)
	}

	doc, err := r.ads().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Ad", err)
		}
		return nil, errors.Internal("Failed to get ad", err)
	}

	var ad entity.Ad
	if err := doc.DataTo(&ad); err != nil {
		return nil, errors.Internal("Failed to parse ad data", err)
	}
	ad.ID = doc.Ref.ID
	return &ad, nil
}

func (r *firestoreAdRepository) Create(ctx context.Context, ad *entity.Ad) error {
	ref := r.ads().NewDoc()
	if _, err := ref.Create(ctx, ad); err != nil {
		return errors.Internal("Failed to create ad", err)
	}

	ad.ID = ref.ID
	return nil
}

func (r *firestoreAdRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if !validFirestoreID(id) {
		return errors.InvalidID("ad", id)
	}

	if _, err := r.ads().Doc(id).Update(ctx, fieldUpdates(fields)); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Ad", err)
		}
		return errors.Internal("Failed to update ad", err)
	}
	return nil
}

func (r *firestoreAdRepository) Delete(ctx context.Context, id string) error {
	if !validFirestoreID(id) {
		return errors.InvalidID("ad", id)
	}

	if _, err := r.ads().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Ad", err)
		}
		return errors.Internal("Failed to delete ad", err)
	}
	return nil
}
