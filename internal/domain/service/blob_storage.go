package service

import (
	"context"
	"io"
)

// Upload describes a file to be stored.
type Upload struct {
	Prefix     string
	Filename   string
	Content    io.Reader
	ImagesOnly bool
}

// StoredObject is an opened blob.
type StoredObject struct {
	Content     io.ReadCloser
	ContentType string
	Size        int64
}

// BlobStorage keeps uploaded media and hands back opaque keys.
type BlobStorage interface {
	// Save sniffs and stores the upload and returns its key.
	Save(ctx context.Context, upload *Upload) (string, error)

	// Open returns a reader for key. The caller closes it.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
