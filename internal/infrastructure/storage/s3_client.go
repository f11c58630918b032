package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Client struct {
	api           putObjectAPI
	bucketName    string
	publicBaseURL string
}

// NewS3Client uploads into bucketName. Returned URLs start with
// publicBaseURL when set, otherwise with the bucket's virtual-hosted
// endpoint.
func NewS3Client(cfg aws.Config, bucketName, publicBaseURL string) (*S3Client, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for the s3 media provider")
	}
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucketName, cfg.Region)
	}

	return &S3Client{
		api:           s3.NewFromConfig(cfg),
		bucketName:    bucketName,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (c *S3Client) Upload(ctx context.Context, localPath, folder string) (string, error) {
	file, err := openLocal(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := objectName(folder, file.extension, time.Now())
	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucketName),
		Key:          aws.String(key),
		Body:         file,
		ContentType:  aws.String(file.contentType),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	return c.publicBaseURL + "/" + key, nil
}
