package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/shopstack/storefront-media/internal/infrastructure/config"
)

// Limits are enforced client-side on every Put. S3 buckets carry no native
// per-object size cap or MIME allow-list, so the bucket-level constraints of
// the pipeline live here.
type Limits struct {
	MaxObjectBytes int64
	AllowedMIME    []string
}

// S3Store implements the object store port on top of aws-sdk-go-v2. Keys are
// never overwritten: Put uses a conditional write and relies on key
// uniqueness instead of upsert.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	urlPrefix string
	limits    Limits
}

func NewS3Store(cfg config.S3Config, limits Limits) (*S3Store, error) {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		urlPrefix: urlPrefix(cfg),
		limits:    limits,
	}, nil
}

func urlPrefix(cfg config.S3Config) string {
	if cfg.PublicURL != "" {
		return fmt.Sprintf("%s/%s/", strings.TrimRight(cfg.PublicURL, "/"), cfg.Bucket)
	}
	if cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", cfg.Bucket, cfg.Region)
}

// EnsureBucket creates the bucket if it does not exist and makes its objects
// publicly readable. Losing a creation race to another caller is success.
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}
	if !isBucketMissing(err) {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if !errors.As(err, &owned) && !errors.As(err, &exists) {
			return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Sid": "PublicRead",
			"Effect": "Allow",
			"Principal": "*",
			"Action": "s3:GetObject",
			"Resource": "arn:aws:s3:::%s/*"
		}]
	}`, s.bucket)

	if _, err := s.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.bucket),
		Policy: aws.String(policy),
	}); err != nil {
		return fmt.Errorf("applying public read policy: %w", err)
	}

	return nil
}

func isBucketMissing(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket"
	}
	return false
}

// Put uploads a derivative under key and returns its public URL. The write
// is conditional on the key being absent.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.limits.MaxObjectBytes > 0 && int64(len(data)) > s.limits.MaxObjectBytes {
		return "", fmt.Errorf("object %q exceeds bucket limit of %d bytes", key, s.limits.MaxObjectBytes)
	}
	if len(s.limits.AllowedMIME) > 0 && !slices.Contains(s.limits.AllowedMIME, contentType) {
		return "", fmt.Errorf("content type %q not allowed in bucket %q", contentType, s.bucket)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %q: %w", key, err)
	}

	return s.PublicURL(key), nil
}

// PublicURL resolves a key to its public URL. Deterministic, no network call.
func (s *S3Store) PublicURL(key string) string {
	return s.urlPrefix + key
}

// KeyFromURL reverses PublicURL. It reports false for any URL that does not
// point into this store's bucket, including data URIs and foreign hosts.
func (s *S3Store) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.urlPrefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Delete removes the object a public URL points at. URLs the store does not
// own are rejected with false and no network call.
func (s *S3Store) Delete(ctx context.Context, url string) (bool, error) {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return false, nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, fmt.Errorf("deleting %q: %w", key, err)
	}

	return true, nil
}
