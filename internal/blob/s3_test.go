package blob

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahilSawant11/mizu/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		S3Region:        "us-east-1",
		S3RootUser:      "minioadmin",
		S3RootPassword:  "minioadmin",
		S3BaseEndpoint:  "http://127.0.0.1:9000/",
		S3Bucket:        "entry-photos",
		S3PresignExpiry: 15 * time.Minute,
	}
}

func stubAWSConfig(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		return &s3.Client{}
	}
}

func TestStorageKey(t *testing.T) {
	key := StorageKey("user-1", "image/jpeg")
	assert.True(t, strings.HasPrefix(key, "user-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	png := StorageKey("user-1", "image/png")
	assert.True(t, strings.HasSuffix(png, ".png"))

	local := StorageKey("", "image/jpeg")
	assert.True(t, strings.HasPrefix(local, "local/"))
}

func TestUpload_PersistsURLAndPath(t *testing.T) {
	stubAWSConfig(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	var gotKey, gotContentType string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotKey = *in.Key
		gotContentType = *in.ContentType
		assert.Equal(t, "entry-photos", *in.Bucket)
		return &s3.PutObjectOutput{}, nil
	}

	store := NewS3Store(testConfig())
	photo, err := store.Upload(context.Background(), "user-1", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, gotKey, photo.Path)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.True(t, strings.HasPrefix(photo.URL, "http://127.0.0.1:9000/entry-photos/"))
}

func TestUpload_PutError(t *testing.T) {
	stubAWSConfig(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("bucket is gone")
	}

	store := NewS3Store(testConfig())
	_, err := store.Upload(context.Background(), "user-1", "image/jpeg", []byte("x"))
	assert.ErrorContains(t, err, "photo upload failed")
}

func TestDelete(t *testing.T) {
	stubAWSConfig(t)

	origDel := deleteObject
	t.Cleanup(func() { deleteObject = origDel })

	var gotKey string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		gotKey = *in.Key
		return &s3.DeleteObjectOutput{}, nil
	}

	store := NewS3Store(testConfig())
	require.NoError(t, store.Delete(context.Background(), "user-1/123-abc.jpg"))
	assert.Equal(t, "user-1/123-abc.jpg", gotKey)
}

func TestPresignGet(t *testing.T) {
	stubAWSConfig(t)

	origPresign := presignGetObject
	origNewPre := newS3PresignClient
	t.Cleanup(func() {
		presignGetObject = origPresign
		newS3PresignClient = origNewPre
	})

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "user-1/123-abc.jpg", *in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed.example/x"}, nil
	}

	store := NewS3Store(testConfig())
	url, err := store.PresignGet(context.Background(), "user-1/123-abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://signed.example/x", url)
}
