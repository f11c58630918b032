package usecase

import (
	"context"
	"strings"
	"time"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
)

type GameUseCase struct {
	gameRepo repository.GameRepository
	notifier GameNotifier
	now      func() time.Time
}

func NewGameUseCase(gameRepo repository.GameRepository, notifier GameNotifier) *GameUseCase {
	return &GameUseCase{
		gameRepo: gameRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *GameUseCase) ListLatest(ctx context.Context, limit int) ([]*entity.Game, error) {
	games, err := uc.gameRepo.ListLatest(ctx, limit)
	if err != nil {
		return nil, errors.Internal("Failed to list games", err)
	}
	return games, nil
}

// Search matches title as a case-insensitive substring. A blank title
// returns every game.
func (uc *GameUseCase) Search(ctx context.Context, title string) ([]*entity.Game, error) {
	games, err := uc.gameRepo.SearchByTitle(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, errors.Internal("Failed to search games", err)
	}
	return games, nil
}

// SearchRequired is Search with a mandatory title.
func (uc *GameUseCase) SearchRequired(ctx context.Context, title string) ([]*entity.Game, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.BadRequest("Search title is required", nil)
	}
	return uc.Search(ctx, title)
}

func (uc *GameUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Game, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errors.BadRequest("Category is required", nil)
	}

	games, err := uc.gameRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Internal("Failed to list games by category", err)
	}
	return games, nil
}

func (uc *GameUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.gameRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (uc *GameUseCase) Count(ctx context.Context) (int64, error) {
	total, err := uc.gameRepo.Count(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count games", err)
	}
	return total, nil
}

func (uc *GameUseCase) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := uc.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("Failed to get game", err)
	}
	return game, nil
}

// Create stores the game and hands it to the notifier. Notification
// failures never fail the creation.
func (uc *GameUseCase) Create(ctx context.Context, fields map[string]interface{}) (*entity.Game, error) {
	title, ok := fields[entity.GameFieldTitle]
	if !ok {
		return nil, errors.BadRequest("title is required", nil)
	}
	if err := checkGameTitle(title); err != nil {
		return nil, err
	}
	if err := checkGameCategory(fields); err != nil {
		return nil, err
	}

	game := entity.NewGameFromFields(fields)
	game.Title = strings.TrimSpace(game.Title)
	game.CreatedAt = uc.now().UTC()

	if err := uc.gameRepo.Create(ctx, game); err != nil {
		return nil, errors.Internal("Failed to create game", err)
	}
	logger.Info("Game created: %s (%s)", game.ID, game.Title)

	if uc.notifier != nil {
		uc.notifier.NotifyNewGame(ctx, game)
	}

	return game, nil
}

func (uc *GameUseCase) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	update := entity.NormalizeGameUpdate(fields)
	if len(update) == 0 {
		return errors.BadRequest("No fields to update", nil)
	}
	if title, ok := update[entity.GameFieldTitle]; ok {
		if err := checkGameTitle(title); err != nil {
			return err
		}
	}
	if err := checkGameCategory(update); err != nil {
		return err
	}
	if createdAt, ok := update[entity.GameFieldCreatedAt]; ok {
		if _, valid := entity.ParseGameTime(createdAt); !valid {
			return errors.BadRequest("createdAt must be an RFC 3339 timestamp", nil)
		}
	}

	if err := uc.gameRepo.Update(ctx, id, update); err != nil {
		return wrapStoreError("Failed to update game", err)
	}
	return nil
}

func (uc *GameUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gameRepo.Delete(ctx, id); err != nil {
		return wrapStoreError("Failed to delete game", err)
	}
	logger.Info("Game deleted: %s", id)
	return nil
}

func checkGameTitle(title interface{}) error {
	if s, ok := title.(string); !ok || strings.TrimSpace(s) == "" {
		return errors.BadRequest("title must be a non-empty string", nil)
	}
	return nil
}

// checkGameCategory rejects a category that is present but not a string.
func checkGameCategory(fields map[string]interface{}) error {
	category, ok := fields[entity.GameFieldCategory]
	if !ok {
		return nil
	}
	if _, isString := category.(string); !isString {
		return errors.BadRequest("category must be a string", nil)
	}
	return nil
}

// wrapStoreError passes through classified errors and reports anything else
// as an internal failure.
func wrapStoreError(message string, err error) error {
	if errors.Is(err, "INVALID_ID") || errors.Is(err, "NOT_FOUND") || errors.Is(err, "CONFLICT") {
		return err
	}
	return errors.Internal(message, err)
}
