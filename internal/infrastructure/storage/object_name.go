package storage

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// objectName builds "<folder>/<uuid>-<yyyymmddhhmmss><ext>".
func objectName(folder, ext string, now time.Time) string {
	folder = strings.Trim(folder, "/")
	name := fmt.Sprintf("%s-%s%s", uuid.New().String(), now.Format("20060102150405"), ext)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

type localFile struct {
	*os.File
	contentType string
	extension   string
}

func openLocal(path string) (*localFile, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect content type: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &localFile{File: f, contentType: mtype.String(), extension: mtype.Extension()}, nil
}
