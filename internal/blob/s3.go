package blob

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SahilSawant11/mizu/internal/config"
)

// Seams for tests: each AWS call goes through a package-level variable that
// can be replaced with a stub.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Store implements Store over an S3-compatible backend (MinIO in dev).
type S3Store struct {
	config *config.Config
}

// NewS3Store returns a store using the S3 settings from cfg.
func NewS3Store(cfg *config.Config) *S3Store {
	return &S3Store{config: cfg}
}

// StorageKey builds the object key for a new photo:
// {owner}/{unixMillis}-{uuid}{ext}. Owner-less (single-user) uploads go
// under "local/".
func StorageKey(ownerID, contentType string) string {
	if ownerID == "" {
		ownerID = "local"
	}
	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	return fmt.Sprintf("%s/%d-%s%s", ownerID, time.Now().UnixMilli(), uuid.New(), ext)
}

func (s *S3Store) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// publicURL joins the base endpoint, bucket, and key into the URL persisted
// on the record. The bucket is assumed to allow public reads; when it does
// not, PresignGet produces a usable link instead.
func (s *S3Store) publicURL(key string) string {
	base := strings.TrimRight(s.config.S3BaseEndpoint, "/")
	return base + "/" + s.config.S3Bucket + "/" + url.PathEscape(key)
}

func (s *S3Store) Upload(ctx context.Context, ownerID, contentType string, data []byte) (*Photo, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	key := StorageKey(ownerID, contentType)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &s.config.S3Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("photo upload failed: %w", err)
	}

	return &Photo{URL: s.publicURL(key), Path: key}, nil
}

func (s *S3Store) Delete(ctx context.Context, path string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &s.config.S3Bucket,
		Key:    &path,
	})
	if err != nil {
		return fmt.Errorf("photo delete failed: %w", err)
	}

	return nil
}

func (s *S3Store) PresignGet(ctx context.Context, path string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &s.config.S3Bucket,
		Key:    &path,
	}, s3.WithPresignExpires(s.config.S3PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
