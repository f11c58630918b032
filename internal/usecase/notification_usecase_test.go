package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecatalog/internal/adapter/repository"
	"gamecatalog/internal/domain/entity"
)

func TestNotifyNewGameContinuesAfterFailure(t *testing.T) {
	subscribers := repository.NewMemorySubscriberRepository()
	ctx := context.Background()
	for _, email := range []string{"first@example.com", "second@example.com"} {
		require.NoError(t, subscribers.Create(ctx, &entity.Subscriber{Email: email, SubscribedAt: time.Now()}))
	}

	mailer := &fakeMailer{failTo: map[string]bool{"first@example.com": true}}
	uc := NewNotificationUseCase(subscribers, mailer, "https://games.example.com/")

	uc.NotifyNewGame(ctx, &entity.Game{ID: "abc123", Title: "Zed", Category: "Puzzle"})

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "first@example.com", mailer.sent[0].To)
	assert.Equal(t, "second@example.com", mailer.sent[1].To)
	assert.Equal(t, "New game added: Zed", mailer.sent[1].Subject)
	assert.Contains(t, mailer.sent[1].Body, "https://games.example.com/game/abc123")
	assert.Contains(t, mailer.sent[1].Body, "Puzzle")
	assert.NotContains(t, mailer.sent[1].Body, "<img")
}

func TestNotifyNewGameEscapesContent(t *testing.T) {
	subscribers := repository.NewMemorySubscriberRepository()
	ctx := context.Background()
	require.NoError(t, subscribers.Create(ctx, &entity.Subscriber{Email: "a@example.com"}))

	mailer := &fakeMailer{}
	uc := NewNotificationUseCase(subscribers, mailer, "https://games.example.com")
	uc.NotifyNewGame(ctx, &entity.Game{ID: "1", Title: "<script>x</script>", Thumbnail: "https://cdn.test/t.png"})

	require.Len(t, mailer.sent, 1)
	assert.NotContains(t, mailer.sent[0].Body, "<script>")
	assert.Contains(t, mailer.sent[0].Body, `<img src="https://cdn.test/t.png"`)
}

func TestAsyncNotifierWait(t *testing.T) {
	inner := &recordingNotifier{}
	async := NewAsyncNotifier(inner)

	ctx, cancel := context.WithCancel(context.Background())
	async.NotifyNewGame(ctx, &entity.Game{ID: "1", Title: "Zed"})
	cancel()

	waitCtx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	require.NoError(t, async.Wait(waitCtx))
	assert.Len(t, inner.games, 1)
}
