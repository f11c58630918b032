package usecase

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"sync"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/internal/domain/repository"
	"gamecatalog/internal/domain/service"
	"gamecatalog/pkg/logger"
)

// GameNotifier announces a newly created game. Implementations are best
// effort and never report failures to the caller.
type GameNotifier interface {
	NotifyNewGame(ctx context.Context, game *entity.Game)
}

var newGameTemplate = template.Must(template.New("new-game").Parse(`<h2>{{.Title}}</h2>
{{- if .Category}}
<p>Category: {{.Category}}</p>
{{- end}}
{{- if .Thumbnail}}
<img src="{{.Thumbnail}}" alt="{{.Title}}" style="max-width:300px;">
{{- end}}
<p><a href="{{.Link}}">View game</a></p>
`))

type newGameMessage struct {
	Title     string
	Category  string
	Thumbnail string
	Link      string
}

type NotificationUseCase struct {
	subscriberRepo repository.SubscriberRepository
	mailer         service.Mailer
	siteBaseURL    string
}

func NewNotificationUseCase(subscriberRepo repository.SubscriberRepository, mailer service.Mailer, siteBaseURL string) *NotificationUseCase {
	return &NotificationUseCase{
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		siteBaseURL:    strings.TrimRight(siteBaseURL, "/"),
	}
}

// NotifyNewGame sends one message per subscriber, one at a time in list
// order. A failed send is logged and the loop moves on; nothing is retried.
func (uc *NotificationUseCase) NotifyNewGame(ctx context.Context, game *entity.Game) {
	subscribers, err := uc.subscriberRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to load subscribers for game %s: %v", game.ID, err)
		return
	}
	if len(subscribers) == 0 {
		return
	}

	subject, body, err := uc.render(game)
	if err != nil {
		logger.Error("Failed to render notification for game %s: %v", game.ID, err)
		return
	}

	sent := 0
	for _, subscriber := range subscribers {
		if err := uc.mailer.Send(ctx, subscriber.Email, subject, body); err != nil {
			logger.Warn("Notification to %s failed: %v", subscriber.Email, err)
			continue
		}
		sent++
	}
	logger.Info("Game %s announced to %d/%d subscribers", game.ID, sent, len(subscribers))
}

func (uc *NotificationUseCase) render(game *entity.Game) (string, string, error) {
	var buf bytes.Buffer
	err := newGameTemplate.Execute(&buf, newGameMessage{
		Title:     game.Title,
		Category:  game.Category,
		Thumbnail: game.Thumbnail,
		Link:      uc.siteBaseURL + "/game/" + game.ID,
	})
	if err != nil {
		return "", "", err
	}
	return "New game added: " + game.Title, buf.String(), nil
}

// AsyncNotifier runs another notifier on a background goroutine with a
// context detached from the request.
type AsyncNotifier struct {
	next GameNotifier
	wg   sync.WaitGroup
}

func NewAsyncNotifier(next GameNotifier) *AsyncNotifier {
	return &AsyncNotifier{next: next}
}

func (n *AsyncNotifier) NotifyNewGame(ctx context.Context, game *entity.Game) {
	detached := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.next.NotifyNewGame(detached, game)
	}()
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (n *AsyncNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
