package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
)

type AdUseCase struct {
	adRepo repository.AdRepository
	now    func() time.Time
}

func NewAdUseCase(adRepo repository.AdRepository) *AdUseCase {
	return &AdUseCase{
		adRepo: adRepo,
		now:    time.Now,
	}
}

type CreateAdInput struct {
	Title    string `json:"title" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=image code"`
	Position string `json:"position" validate:"required"`
	Image    string `json:"image" validate:"required_if=Type image"`
	Link     string `json:"link" validate:"required_if=Type image"`
	Content  string `json:"content" validate:"required_if=Type code"`
}

func (uc *AdUseCase) List(ctx context.Context) ([]*entity.Ad, error) {
	ads, err := uc.adRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list ads", err)
	}
	return ads, nil
}

func (uc *AdUseCase) GetByID(ctx context.Context, id string) (*entity.Ad, error) {
	ad, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("Failed to get ad", err)
	}
	return ad, nil
}

func (uc *AdUseCase) Create(ctx context.Context, input CreateAdInput) (*entity.Ad, error) {
	ad := &entity.Ad{
		Title:     strings.TrimSpace(input.Title),
		Type:      input.Type,
		Position:  strings.TrimSpace(input.Position),
		Image:     input.Image,
		Link:      input.Link,
		Content:   input.Content,
		CreatedAt: uc.now().UTC(),
	}
	if err := checkAd(ad); err != nil {
		return nil, err
	}

	if err := uc.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Internal("Failed to create ad", err)
	}
	logger.Info("Ad created: %s (%s)", ad.ID, ad.Type)
	return ad, nil
}

// Update replaces the given fields. The ad must still satisfy the
// type-conditional rules afterwards.
func (uc *AdUseCase) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	update := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if key == "id" || key == "_id" {
			continue
		}
		if !entity.AdMutableFields[key] {
			return errors.BadRequest(fmt.Sprintf("Field %q cannot be updated", key), nil)
		}
		s, ok := value.(string)
		if !ok {
			return errors.BadRequest(fmt.Sprintf("%s must be a string", key), nil)
		}
		update[key] = s
	}
	if len(update) == 0 {
		return errors.BadRequest("No fields to update", nil)
	}

	current, err := uc.adRepo.GetByID(ctx, id)
	if err != nil {
		return wrapStoreError("Failed to get ad", err)
	}
	if err := checkAd(applyAdUpdate(*current, update)); err != nil {
		return err
	}

	if err := uc.adRepo.Update(ctx, id, update); err != nil {
		return wrapStoreError("Failed to update ad", err)
	}
	return nil
}

func (uc *AdUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.adRepo.Delete(ctx, id); err != nil {
		return wrapStoreError("Failed to delete ad", err)
	}
	return nil
}

func applyAdUpdate(ad entity.Ad, update map[string]interface{}) *entity.Ad {
	keys := make([]string, 0, len(update))
	for key := range update {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := update[key].(string)
		switch key {
		case "title":
			ad.Title = value
		case "type":
			ad.Type = value
		case "position":
			ad.Position = value
		case "image":
			ad.Image = value
		case "link":
			ad.Link = value
		case "content":
			ad.Content = value
		}
	}
	return &ad
}

func checkAd(ad *entity.Ad) error {
	switch {
	case strings.TrimSpace(ad.Title) == "":
		return errors.BadRequest("title is required", nil)
	case strings.TrimSpace(ad.Position) == "":
		return errors.BadRequest("position is required", nil)
	}

	switch ad.Type {
	case entity.AdTypeImage:
		if strings.TrimSpace(ad.Image) == "" {
			return errors.BadRequest("image is required when type is image", nil)
		}
		if strings.TrimSpace(ad.Link) == "" {
			return errors.BadRequest("link is required when type is image", nil)
		}
	case entity.AdTypeCode:
		if strings.TrimSpace(ad.Content) == "" {
			return errors.BadRequest("content is required when type is code", nil)
		}
	default:
		return errors.BadRequest("type must be one of: image code", nil)
	}
	return nil
}
