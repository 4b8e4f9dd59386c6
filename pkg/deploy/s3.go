package deploy

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/veneer-dev/veneer/internal/errors"
)

// S3Uploader deploys to an AWS S3 bucket.
//
// Example usage:
//
//	uploader, err := deploy.NewS3Uploader(ctx, "my-bucket", "us-east-1")
//	if err != nil {
//	    return err
//	}
//	deployer := deploy.NewDeployer(uploader, deploy.Options{})
//	n, err := deployer.Deploy(ctx, cfg.OutputPath())
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader creates an uploader for the given bucket using the
// default AWS credential chain (environment, shared config, instance
// metadata). Region overrides the chain's region when non-empty.
func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E203").Wrap(err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// NewS3UploaderFromClient wraps an existing S3 client. Used by tests
// and callers that configure the SDK themselves.
func NewS3UploaderFromClient(client *s3.Client, bucket string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket}
}

// Upload stores one object in the bucket.
func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.New("E202").WithDetail("s3://" + u.bucket + "/" + key).Wrap(err)
	}
	return nil
}
