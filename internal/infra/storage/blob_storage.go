// Package storage keeps uploaded media (product photos, order references,
// payment evidence, chat attachments) in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"sweets/config"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"
	"sweets/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	maxUploadSize int64
}

// Params holds the dependencies of the blob store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the bucket named by storage.url and closes it on stop.
func NewBlobStorage(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(context.Background(), cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.URL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Blob storage ready", slog.String("url", cfg.URL))

	return NewBlobStorageFromBucket(bucket, cfg.MaxUploadSize), nil
}

// NewBlobStorageFromBucket wraps an already opened bucket.
func NewBlobStorageFromBucket(bucket *blob.Bucket, maxUploadSize int64) service.BlobStorage {
	return &blobStorage{bucket: bucket, maxUploadSize: maxUploadSize}
}

// Save reads the upload fully, enforcing the size cap, then stores it as
// prefix/<uuid><ext> with the sniffed content type.
func (s *blobStorage) Save(ctx context.Context, upload *service.Upload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "upload is empty")
	}

	limit := s.maxUploadSize
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(upload.Content, limit+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "upload is empty")
	}
	if int64(len(data)) > limit {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "upload exceeds %s", util.FormatBytes(limit))
	}

	mtype := mimetype.Detect(data)
	if upload.ImagesOnly && !strings.HasPrefix(mtype.String(), "image/") {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "%s is not an image (%s)", upload.Filename, mtype.String())
	}

	key := path.Join(strings.Trim(upload.Prefix, "/"), uuid.NewString()+mtype.Extension())
	opts := &blob.WriterOptions{
		ContentType: mtype.String(),
		Metadata: map[string]string{
			"filename": path.Base(upload.Filename),
			"sha256":   util.Checksum(data),
		},
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write blob")
	}

	return key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	if !validKey(key) {
		return nil, domainerrors.ErrMediaNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to open blob")
	}

	return &service.StoredObject{
		Content:     reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

// validKey rejects traversal and absolute keys coming from URLs.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}

	return path.Clean(key) == key && !strings.Contains(key, "..")
}
