package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"gamecatalog/internal/domain/service"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadUseCase struct {
	uploader service.MediaUploader
	folder   string
	tmpDir   string
	maxBytes int64
}

func NewUploadUseCase(uploader service.MediaUploader, folder, tmpDir string, maxBytes int64) *UploadUseCase {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &UploadUseCase{
		uploader: uploader,
		folder:   folder,
		tmpDir:   tmpDir,
		maxBytes: maxBytes,
	}
}

// UploadFiles uploads every file independently and returns the URLs of the
// ones that succeeded. Only an empty batch is an error.
func (uc *UploadUseCase) UploadFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.BadRequest("No files uploaded", nil)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		path, err := uc.stage(file)
		if err != nil {
			logger.Error("Failed to stage %s: %v", file.Filename, err)
			continue
		}

		url, err := uc.UploadPath(ctx, path)
		if err != nil {
			logger.Error("Failed to upload %s: %v", file.Filename, err)
			continue
		}
		urls = append(urls, url)
	}

	logger.Info("Uploaded %d/%d files", len(urls), len(files))
	return urls, nil
}

// UploadPath uploads a staged file and removes it afterwards, whatever the
// outcome.
func (uc *UploadUseCase) UploadPath(ctx context.Context, path string) (string, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove temp file %s: %v", path, err)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if uc.maxBytes > 0 && info.Size() > uc.maxBytes {
		return "", fmt.Errorf("file size %d exceeds maximum of %d bytes", info.Size(), uc.maxBytes)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	if !allowedImageTypes[mtype.String()] {
		return "", fmt.Errorf("file type %s not supported", mtype.String())
	}

	return uc.uploader.Upload(ctx, path, uc.folder)
}

func (uc *UploadUseCase) stage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp(uc.tmpDir, "upload-*"+filepath.Ext(file.Filename))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
