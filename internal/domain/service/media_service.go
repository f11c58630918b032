package service

import "context"

// MediaUploader uploads a local file into folder on the media host and
// returns its public URL. It does not remove the local file.
type MediaUploader interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
}
