package handler

import (
	"gamecatalog/internal/domain/repository"
	"gamecatalog/internal/usecase"
)

// Handlers groups every HTTP handler of the service.
type Handlers struct {
	Game       *GameHandler
	Ad         *AdHandler
	User       *UserHandler
	Subscriber *SubscriberHandler
	Upload     *UploadHandler
	Sitemap    *SitemapHandler
	Health     *HealthHandler
}

type Dependencies struct {
	GameUseCase       *usecase.GameUseCase
	AdUseCase         *usecase.AdUseCase
	UserUseCase       *usecase.UserUseCase
	SubscriberUseCase *usecase.SubscriberUseCase
	UploadUseCase     *usecase.UploadUseCase
	SitemapUseCase    *usecase.SitemapUseCase
	StorePinger       repository.Pinger
}

func New(deps Dependencies) *Handlers {
	return &Handlers{
		Game:       NewGameHandler(deps.GameUseCase, deps.UserUseCase),
		Ad:         NewAdHandler(deps.AdUseCase),
		User:       NewUserHandler(deps.UserUseCase),
		Subscriber: NewSubscriberHandler(deps.SubscriberUseCase),
		Upload:     NewUploadHandler(deps.UploadUseCase),
		Sitemap:    NewSitemapHandler(deps.SitemapUseCase),
		Health:     NewHealthHandler(deps.StorePinger),
	}
}
