package impl

import (
	"context"
	"log/slog"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/pkg/errors"
)

// uploads stores files for one operation and can undo them when the operation fails.
type uploads struct {
	storage service.BlobStorage
	logger  *slog.Logger
	keys    []string
}

func newUploads(storage service.BlobStorage, logger *slog.Logger) *uploads {
	return &uploads{storage: storage, logger: logger}
}

// save stores file under prefix. A nil file yields an empty key.
func (u *uploads) save(ctx context.Context, prefix string, file *usecase.FileUpload, imagesOnly bool) (string, error) {
	if file == nil {
		return "", nil
	}

	key, err := u.storage.Save(ctx, &service.Upload{
		Prefix:     prefix,
		Filename:   file.Filename,
		Content:    file.Content,
		ImagesOnly: imagesOnly,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to store %s", file.Filename)
	}
	u.keys = append(u.keys, key)

	return key, nil
}

// discard deletes every stored file, best effort.
func (u *uploads) discard(ctx context.Context) {
	for _, key := range u.keys {
		if err := u.storage.Delete(ctx, key); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, u.logger).Warn("Failed to delete orphaned upload",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
	u.keys = nil
}
