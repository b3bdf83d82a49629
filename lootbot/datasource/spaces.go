package datasource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Spaces reads a table object from an S3-compatible bucket, using the
// DigitalOcean Spaces endpoint convention.
type Spaces struct {
	client *s3.Client
	bucket string
	key    string
}

func NewSpaces(accessKey, secret, region, bucket, key string) (*Spaces, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	return &Spaces{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		key:    strings.TrimPrefix(key, "/"),
	}, nil
}

func (s *Spaces) Label() string {
	return fmt.Sprintf("%s/%s", s.bucket, s.key)
}

func (s *Spaces) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
