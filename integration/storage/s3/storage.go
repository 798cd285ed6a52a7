package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Client is the subset of S3 operations asset storage needs. Satisfied by
// *s3.Client; narrowed for mocking in tests.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
}

// Config contains S3 configuration for branding asset storage.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION,required"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`         // for S3-compatible services like MinIO
	BaseURL        string `env:"S3_BASE_URL"`         // CDN or public URL base; auto-generated if empty
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"` // required for MinIO
}

// AssetStorage uploads workspace branding assets (logos) and hands back the
// public URL that feeds branding.Settings.LogoURL.
type AssetStorage struct {
	client  Client
	bucket  string
	baseURL string
}

// Option configures AssetStorage.
type Option func(*options)

type options struct {
	client Client
}

// WithClient sets a pre-configured S3 client, primarily for testing.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// Content types accepted for logo uploads, mapped to the stored file
// extension.
var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

// New creates asset storage over AWS S3 or an S3-compatible service.
func New(ctx context.Context, cfg Config, opts ...Option) (*AssetStorage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: Bucket and Region are required", ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		client = s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &AssetStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

// UploadLogo stores a workspace logo and returns its public URL. Older
// logos with a different extension are not cleaned up here; the settings
// screen overwrites the URL and orphans expire via bucket lifecycle rules.
func (s *AssetStorage) UploadLogo(ctx context.Context, workspaceID uuid.UUID, body io.Reader, contentType string) (string, error) {
	ext, ok := logoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType)
	}

	key := logoKey(workspaceID, ext)
	_, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", classifyError(err, "upload logo")
	}

	return s.baseURL + "/" + key, nil
}

// DeleteLogo removes a workspace logo.
func (s *AssetStorage) DeleteLogo(ctx context.Context, workspaceID uuid.UUID, contentType string) error {
	ext, ok := logoExtensions[contentType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType)
	}

	_, err := s.client.DeleteObject(ctx, &s3aws.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(logoKey(workspaceID, ext)),
	})
	return classifyError(err, "delete logo")
}

// LogoExists reports whether a logo object is present for the workspace.
func (s *AssetStorage) LogoExists(ctx context.Context, workspaceID uuid.UUID, contentType string) (bool, error) {
	ext, ok := logoExtensions[contentType]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType)
	}

	_, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(logoKey(workspaceID, ext)),
	})
	if err != nil {
		classified := classifyError(err, "head logo")
		if errors.Is(classified, ErrAssetNotFound) {
			return false, nil
		}
		return false, classified
	}
	return true, nil
}

func logoKey(workspaceID uuid.UUID, ext string) string {
	return "branding/" + workspaceID.String() + "/logo" + ext
}

func publicBaseURL(cfg Config) string {
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
