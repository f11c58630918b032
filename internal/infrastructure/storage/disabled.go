package storage

import (
	"context"
	"fmt"
)

// DisabledUploader is used when MEDIA_PROVIDER=none. Every upload fails,
// so the upload endpoint answers with an empty url list.
type DisabledUploader struct{}

func (DisabledUploader) Upload(ctx context.Context, localPath, folder string) (string, error) {
	return "", fmt.Errorf("media uploads are disabled")
}
