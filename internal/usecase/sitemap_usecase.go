package usecase

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var staticSitemapPaths = []string{"/", "/games", "/categories", "/subscribe"}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type SitemapUseCase struct {
	gameRepo    repository.GameRepository
	siteBaseURL string
	now         func() time.Time
}

func NewSitemapUseCase(gameRepo repository.GameRepository, siteBaseURL string) *SitemapUseCase {
	return &SitemapUseCase{
		gameRepo:    gameRepo,
		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
		now:         time.Now,
	}
}

// Generate renders the static pages, one entry per category and one per
// game.
func (uc *SitemapUseCase) Generate(ctx context.Context) ([]byte, error) {
	categories, err := uc.gameRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load categories", err)
	}
	games, err := uc.gameRepo.ListForSitemap(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load games", err)
	}

	set := sitemapURLSet{XMLNS: sitemapNamespace}
	for _, path := range staticSitemapPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: uc.siteBaseURL + path})
	}
	for _, category := range categories {
		set.URLs = append(set.URLs, sitemapURL{Loc: uc.siteBaseURL + "/category/" + url.PathEscape(category)})
	}

	today := uc.now().UTC().Format("2006-01-02")
	for _, game := range games {
		lastMod := today
		if !game.CreatedAt.IsZero() {
			lastMod = game.CreatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     uc.siteBaseURL + "/game/" + url.PathEscape(game.ID),
			LastMod: lastMod,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Internal("Failed to render sitemap", err)
	}
	return append([]byte(xml.Header), body...), nil
}
