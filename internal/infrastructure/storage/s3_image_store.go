package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"retroart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ImageStore keeps uploaded source images in a single bucket. The object URL
// is stored on the order and served to the admin dashboard as-is, so the
// bucket is expected to allow public reads (or sit behind a CDN).

type S3ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IImageStore = (*S3ImageStore)(nil)

func NewS3ImageStore(client *s3.Client, bucket string) *S3ImageStore {
	return &S3ImageStore{
		client: client,
		bucket: bucket,
		region: getenvDefault("AWS_REGION", "us-east-1"),
	}
}

func (s *S3ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] put failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}
	log.Printf("[storage][s3] put success bucket=%s key=%s", s.bucket, key)
	return s.objectURL(key), nil
}

func (s *S3ImageStore) objectURL(key string) string {
	if endpoint := strings.TrimRight(os.Getenv("AWS_ENDPOINT"), "/"); endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
