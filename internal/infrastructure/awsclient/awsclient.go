package awsclient

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// NewConfigFromEnv builds the shared AWS config used by the DynamoDB, S3 and
// SES clients.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - AWS_ENDPOINT (optional; e.g. http://localstack:4566 routes every service)
func NewConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("AWS_ENDPOINT")

	// Local stacks do not validate credentials, but the SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(_, region string, _ ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// ConnectDynamoDB creates the DynamoDB client backing order persistence.
func ConnectDynamoDB() *dynamodb.Client {
	return dynamodb.NewFromConfig(mustConfig())
}

// ConnectS3 creates the S3 client backing image storage.
func ConnectS3() *s3.Client {
	return s3.NewFromConfig(mustConfig(), func(o *s3.Options) {
		o.UsePathStyle = os.Getenv("AWS_ENDPOINT") != ""
	})
}

// ConnectSES creates the SES client backing notification mail.
func ConnectSES() *sesv2.Client {
	return sesv2.NewFromConfig(mustConfig())
}

func mustConfig() aws.Config {
	cfg, err := NewConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
