package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestObjectName(t *testing.T) {
	now := time.Date(2024, 7, 1, 13, 4, 5, 0, time.UTC)
	name := objectName("/games/", ".png", now)

	pattern := regexp.MustCompile(`^games/[0-9a-f-]{36}-20240701130405\.png$`)
	assert.Regexp(t, pattern, name)
	assert.NotEqual(t, name, objectName("games", ".png", now))
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	api := &fakeS3{}
	client := &S3Client{api: api, bucketName: "media", publicBaseURL: "https://cdn.example.com"}

	url, err := client.Upload(context.Background(), path, "games")
	require.NoError(t, err)

	assert.Equal(t, "media", aws.ToString(api.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(api.input.ContentType))
	assert.Equal(t, pngHeader, api.body)
	assert.Equal(t, "https://cdn.example.com/"+aws.ToString(api.input.Key), url)
	assert.Regexp(t, `^games/.+\.png$`, aws.ToString(api.input.Key))

	// the uploader leaves the local file to its caller
	assert.FileExists(t, path)
}

func TestS3UploadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	client := &S3Client{api: &fakeS3{err: fmt.Errorf("access denied")}, bucketName: "media", publicBaseURL: "https://cdn.example.com"}
	_, err := client.Upload(context.Background(), path, "games")
	assert.ErrorContains(t, err, "access denied")
}

func TestNewS3ClientDefaultURL(t *testing.T) {
	client, err := NewS3Client(aws.Config{Region: "eu-west-1"}, "media", "")
	require.NoError(t, err)
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", client.publicBaseURL)

	_, err = NewS3Client(aws.Config{}, "", "")
	assert.Error(t, err)
}
