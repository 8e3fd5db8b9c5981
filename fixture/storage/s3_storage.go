package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ethereum/go-ethereum/log"
)

// S3Storage keeps fixtures in an S3 bucket, optionally under a key prefix,
// so generated fixtures can be shared with verification jobs running
// elsewhere.
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func NewS3Storage(ctx context.Context, bucket, prefix string) (Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Storage{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

func (s *S3Storage) Reader(key string) (io.ReadCloser, error) {
	objectKey := s.objectKey(key)
	attributes, err := s.client.GetObjectAttributes(context.TODO(), &s3.GetObjectAttributesInput{
		Bucket:           &s.bucket,
		Key:              &objectKey,
		ObjectAttributes: []types.ObjectAttributes{types.ObjectAttributesObjectSize},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get object attributes: %w", err)
	}

	object, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &objectKey,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get object: %w", err)
	}
	return NewLoggingReader(object.Body, "Downloading fixture", objectKey, *attributes.ObjectSize), nil
}

func (s *S3Storage) Writer(key string) (io.WriteCloser, error) {
	objectKey := s.objectKey(key)

	reader, writer := io.Pipe()
	w := &writeWaiter{WriteCloser: writer}
	w.wg.Add(1)
	go func() {
		_, err := s.uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket: &s.bucket,
			Key:    &objectKey,
			Body:   reader,
		})
		w.wg.Done()
		if err != nil {
			_ = reader.CloseWithError(err)
			return
		}
		log.Info("Uploaded fixture", "bucket", s.bucket, "key", objectKey)
	}()

	return w, nil
}

func (s *S3Storage) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// writeWaiter blocks Close until the upload goroutine has drained the pipe,
// so callers observe upload errors instead of racing past them.
type writeWaiter struct {
	io.WriteCloser
	wg sync.WaitGroup
}

func (w *writeWaiter) Close() error {
	err := w.WriteCloser.Close()
	if err != nil {
		return err
	}
	w.wg.Wait()
	return nil
}
