package store

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// S3Store keeps chart records in an S3 bucket: one object per record under
// charts/, plus a marker object per commitment under commitments/ for
// duplicate detection. The head-then-put sequence is not atomic across
// writers, so this backend assumes a single writing server per bucket
// prefix, which matches how the service is deployed.
type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// NewS3Store builds a store from the ambient AWS configuration (env,
// shared config, instance role).
func NewS3Store(ctx context.Context, bucket, prefix string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}
	client := s3.NewFromConfig(cfg)
	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

func (s *S3Store) recordKey(id string) string {
	return path.Join(s.prefix, "charts", id+".json")
}

func (s *S3Store) commitmentKey(commitment string) string {
	return path.Join(s.prefix, "commitments", commitment)
}

func (s *S3Store) Create(ctx context.Context, rec ChartRecord) error {
	markerKey := s.commitmentKey(rec.Commitment)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(markerKey),
	})
	if err == nil {
		return ErrDuplicateCommitment
	}
	var notFound *types.NotFound
	if !stderrors.As(err, &notFound) {
		return errors.Wrap(err, "checking commitment marker")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "encoding chart record")
	}
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.recordKey(rec.ID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrap(err, "uploading chart record")
	}

	// Marker body carries the chart id so operators can trace a
	// commitment back to its record.
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(markerKey),
		Body:   bytes.NewReader([]byte(rec.ID)),
	})
	if err != nil {
		return errors.Wrap(err, "uploading commitment marker")
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, id string) (ChartRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.recordKey(id)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return ChartRecord{}, ErrNotFound
		}
		return ChartRecord{}, errors.Wrap(err, "fetching chart record")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return ChartRecord{}, errors.Wrap(err, "reading chart record body")
	}
	var rec ChartRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ChartRecord{}, errors.Wrap(err, "decoding chart record")
	}
	return rec, nil
}
