package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"gamecatalog/internal/domain/entity"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	if m.failTo[to] {
		return fmt.Errorf("mail transport rejected %s", to)
	}
	return nil
}

type fakeUploader struct {
	uploaded []string
	fail     bool
}

func (u *fakeUploader) Upload(ctx context.Context, localPath, folder string) (string, error) {
	if u.fail {
		return "", fmt.Errorf("media host unavailable")
	}
	u.uploaded = append(u.uploaded, localPath)
	return "https://media.example.com/" + folder + "/" + filepath.Base(localPath), nil
}

type recordingNotifier struct {
	games []*entity.Game
}

func (n *recordingNotifier) NotifyNewGame(ctx context.Context, game *entity.Game) {
	n.games = append(n.games, game)
}
