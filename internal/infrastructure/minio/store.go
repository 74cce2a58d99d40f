package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"fotolio/internal/domain/repository/blob"
	"fotolio/pkg/logger"
)

const urlPrefix = "/uploads"

// Store keeps photo payloads in an S3-compatible bucket while exposing the
// same logical /uploads/... URLs as the filesystem backend.
type Store struct {
	client *Client
	cfg    StoreConfig
	log    *logger.Logger
}

func NewStore(client *Client, cfg StoreConfig, log *logger.Logger) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

func (s *Store) URL(subfolder, filename string) string {
	return path.Join(urlPrefix, subfolder, filename)
}

func (s *Store) Save(ctx context.Context, data []byte, filename, subfolder string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", errors.New("blob filename must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	object := objectName(s.URL(subfolder, filename))
	_, err := s.client.MinioClient.PutObject(ctx, s.cfg.Bucket, object,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.log.Error("failed to put object", "object", object, "err", err)

		return "", fmt.Errorf("putting object: %w", err)
	}

	url := s.URL(subfolder, filename)
	s.log.Info("blob saved", "url", url, "bytes", len(data))

	return url, nil
}

func (s *Store) Load(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	object := objectName(url)
	obj, err := s.client.MinioClient.GetObject(ctx, s.cfg.Bucket, object, minio.GetObjectOptions{})
	if err != nil {
		s.log.Error("failed to get object", "object", object, "err", err)

		return nil, fmt.Errorf("getting object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, blob.ErrNotFound
		}
		s.log.Error("failed to read object", "object", object, "err", err)

		return nil, fmt.Errorf("reading object: %w", err)
	}

	return data, nil
}

func (s *Store) Delete(ctx context.Context, url string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	object := objectName(url)

	// S3 removals are idempotent, so stat first to report already-absent
	// blobs as false rather than true.
	_, err := s.client.MinioClient.StatObject(ctx, s.cfg.Bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			s.log.Warn("blob already absent", "url", url)

			return false, nil
		}
		s.log.Error("failed to stat object", "object", object, "err", err)

		return false, fmt.Errorf("checking object: %w", err)
	}

	if err := s.client.MinioClient.RemoveObject(ctx, s.cfg.Bucket, object, minio.RemoveObjectOptions{}); err != nil {
		s.log.Error("failed to remove object", "object", object, "err", err)

		return false, fmt.Errorf("removing object: %w", err)
	}

	s.log.Info("blob deleted", "url", url)

	return true, nil
}

func objectName(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, urlPrefix), "/")
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
