// Package s3 implements pkg/objectstore.Store on Amazon S3 and
// S3-compatible endpoints (MinIO, Wasabi, localstack).
package s3

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithy "github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
	"github.com/chris-alexander-pop/system-design-library/pkg/resilience"
)

// retryPolicy is the object store's transient-error retry policy: five
// attempts total, starting at 200ms and doubling, applied only to calls
// classified as transient by isTransientErr.
var retryPolicy = resilience.RetryConfig{
	MaxAttempts:    5,
	InitialBackoff: 200 * time.Millisecond,
	Multiplier:     2.0,
	MaxBackoff:     5 * time.Second,
	RetryIf:        isTransientErr,
}

// Store implements objectstore.Store on AWS S3.
type Store struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	uploader   *manager.Uploader
	region     string
	multipartThreshold int64
}

// New builds an S3-backed store from cfg. When cfg.Endpoint is set the
// client points at that endpoint instead of AWS, for use against MinIO or
// localstack in development and tests.
func New(ctx context.Context, cfg objectstore.Config) (*Store, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	optFns = append(optFns, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKeyID != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, errors.Internal("failed to load aws config", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.MultipartPartSize > 0 {
			u.PartSize = cfg.MultipartPartSize
		}
		if cfg.MultipartConcurrency > 0 {
			u.Concurrency = cfg.MultipartConcurrency
		}
	})

	threshold := cfg.MultipartThreshold
	if threshold <= 0 {
		threshold = 100 * 1024 * 1024
	}

	return &Store{
		client:             client,
		presigner:          s3.NewPresignClient(client),
		uploader:           uploader,
		region:             cfg.Region,
		multipartThreshold: threshold,
	}, nil
}

// EnsureBucket creates bucket if it does not already exist, mirroring
// boto3's head-then-create idiom: a 404 from HeadBucket means "missing",
// anything else is a real access problem we should surface.
func (st *Store) EnsureBucket(ctx context.Context, bucket string) error {
	var exists bool
	probeErr := resilience.Retry(ctx, retryPolicy, func(ctx context.Context) error {
		_, err := st.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		if err == nil {
			exists = true
			return nil
		}
		if isNotFound(err) {
			return nil
		}
		return err
	})
	if probeErr != nil {
		return classify("failed to check bucket", probeErr)
	}
	if exists {
		return nil
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	if st.region != "" && st.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(st.region),
		}
	}

	if err := resilience.Retry(ctx, retryPolicy, func(ctx context.Context) error {
		_, err := st.client.CreateBucket(ctx, input)
		return err
	}); err != nil {
		return classify("failed to create bucket", err)
	}
	return nil
}

// Put uploads data to bucket/key. The manager.Uploader handles the
// multipart/single-part decision internally based on how much it can read
// before hitting its part size, so Put does not need to branch on size
// itself; size is accepted for interface symmetry and future use (e.g.
// Content-Length hints) but is not required to be accurate.
//
// data is only re-readable if it supports seeking (e.g. bytes.Reader), so
// retries here are limited to the upload's internal part-level retries;
// a failure that survives those is classified and returned as-is rather
// than retried again from the top, since the reader may already be
// partially consumed.
func (st *Store) Put(ctx context.Context, bucket, key string, data io.Reader, size int64) error {
	_, err := st.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   data,
	})
	if err != nil {
		return classify("failed to upload object", err)
	}
	return nil
}

func (st *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	var body io.ReadCloser
	err := resilience.Retry(ctx, retryPolicy, func(ctx context.Context) error {
		out, err := st.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
		body = out.Body
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("object not found", err)
		}
		return nil, classify("failed to get object", err)
	}
	return body, nil
}

func (st *Store) Delete(ctx context.Context, bucket, key string) error {
	err := resilience.Retry(ctx, retryPolicy, func(ctx context.Context) error {
		_, err := st.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		return err
	})
	if err != nil {
		return classify("failed to delete object", err)
	}
	return nil
}

func (st *Store) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	req, err := st.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", errors.Internal("failed to presign url", err)
	}
	return req.URL, nil
}

func isNotFound(err error) bool {
	var respErr *smithyhttp.ResponseError
	if stderrors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == 404
	}
	var nfe *types.NotFound
	return stderrors.As(err, &nfe)
}

// transientAWSCodes are the API error codes S3 (and S3-compatible stores)
// return for conditions expected to clear up on their own: throttling,
// overload, and transient internal failures.
var transientAWSCodes = map[string]bool{
	"RequestTimeout":           true,
	"RequestTimeTooSkewed":     true,
	"Throttling":               true,
	"ThrottlingException":      true,
	"SlowDown":                 true,
	"InternalError":            true,
	"ServiceUnavailable":       true,
	"ProvisionedThroughputExceededException": true,
}

// isTransientErr classifies an S3 SDK error as transient (worth retrying)
// based on its API error code or HTTP status: NotFound, 403 and other 4xx
// responses are fatal, 5xx responses are transient, and an error with no
// HTTP response (e.g. a connection failure) is treated as transient.
func isTransientErr(err error) bool {
	if err == nil {
		return false
	}
	if isNotFound(err) {
		return false
	}

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		if transientAWSCodes[apiErr.ErrorCode()] {
			return true
		}
	}

	var respErr *smithyhttp.ResponseError
	if stderrors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		if status == 403 {
			return false
		}
		return status >= 500
	}

	// No structured AWS error (e.g. a connection-level failure): treat as
	// transient, since that's almost always a network blip.
	return true
}

// classify turns a retry-exhausted S3 SDK error into the transient/fatal
// AppError distinction the rest of the system relies on.
func classify(message string, err error) error {
	if isTransientErr(err) {
		return objectstore.ErrTransient(message, err)
	}
	return objectstore.ErrFatal(message, err)
}
