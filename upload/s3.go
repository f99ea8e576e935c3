package upload

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

const videoContentType = "video/mp4"

// S3Config contains minimal configuration for creating an S3 client.
// Empty values fall back to the standard AWS config/credential chain.
type S3Config struct {
	Bucket string
	// Prefix is prepended to every object key
	Prefix string
	Region string
	// Profile selects a named shared config/credentials profile
	Profile string
	// UsePathStyle forces path-style addressing (useful for S3-compatible providers)
	UsePathStyle bool
}

// S3 uploads videos into a single bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
	log    logrus.FieldLogger
}

// NewS3 creates an uploader using the default AWS configuration chain,
// with optional overrides from cfg.
func NewS3(ctx context.Context, cfg S3Config, log logrus.FieldLogger) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3(client, cfg, log), nil
}

func newS3(client *s3.Client, cfg S3Config, log logrus.FieldLogger) *S3 {
	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, log: log}
}

func (s *S3) Upload(ctx context.Context, filePath, name string) (Ref, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Ref{}, fmt.Errorf("failed to open video file: %w", err)
	}
	defer f.Close()

	key := s.key(name)
	s.log.WithFields(logrus.Fields{"bucket": s.bucket, "key": key}).
		Infof("Uploading %s (%.2f MB)", name, fileSizeMB(f))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(videoContentType),
	})
	if err != nil {
		return Ref{}, fmt.Errorf("failed to upload video: %w", err)
	}

	url := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	s.log.WithField("url", url).Info("Video uploaded")
	return Ref{Backend: "s3", ID: key, Name: name, URL: url}, nil
}

func (s *S3) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}
