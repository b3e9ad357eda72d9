package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"
	"sweets/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestStorage(t *testing.T, maxSize int64) service.BlobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorageFromBucket(bucket, maxSize)
}

func TestBlobStorage_SaveAndOpenImage(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t, 1<<20)
	data := pngBytes(t)

	key, err := store.Save(ctx, &service.Upload{
		Prefix:     "payments",
		Filename:   "comprovativo.png",
		Content:    bytes.NewReader(data),
		ImagesOnly: true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "payments/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	obj, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer obj.Content.Close()

	got, err := io.ReadAll(obj.Content)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len(data)), obj.Size)
}

func TestBlobStorage_SaveRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		maxSize int64
		upload  *service.Upload
	}{
		{
			name:    "non image when images only",
			maxSize: 1 << 20,
			upload:  &service.Upload{Prefix: "orders", Filename: "notes.txt", Content: strings.NewReader("hello there"), ImagesOnly: true},
		},
		{
			name:    "empty content",
			maxSize: 1 << 20,
			upload:  &service.Upload{Prefix: "chat", Filename: "empty", Content: strings.NewReader("")},
		},
		{
			name:    "nil upload",
			maxSize: 1 << 20,
			upload:  nil,
		},
		{
			name:    "over size cap",
			maxSize: 8,
			upload:  &service.Upload{Prefix: "chat", Filename: "big.txt", Content: strings.NewReader("0123456789")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStorage(t, tt.maxSize)

			_, err := store.Save(ctx, tt.upload)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBlobStorage_AttachmentMayBeAnyType(t *testing.T) {
	store := newTestStorage(t, 1<<20)

	key, err := store.Save(context.Background(), &service.Upload{
		Prefix:   "chat",
		Filename: "nota.txt",
		Content:  strings.NewReader("encomenda para sábado"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "chat/"))
}

func TestBlobStorage_OpenMissingAndInvalidKeys(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t, 1<<20)

	for _, key := range []string{"payments/missing.png", "../etc/passwd", "/abs", ""} {
		_, err := store.Open(ctx, key)
		assert.ErrorIs(t, err, domainerrors.ErrMediaNotFound, key)
	}
}

func TestBlobStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t, 1<<20)

	key, err := store.Save(ctx, &service.Upload{Prefix: "products", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, ""))

	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotFound)
}

func TestBlobStorage_SaveRecordsMetadata(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStorageFromBucket(bucket, 1<<20)
	data := pngBytes(t)

	key, err := store.Save(ctx, &service.Upload{Prefix: "chat", Filename: "../../foto.png", Content: bytes.NewReader(data)})
	require.NoError(t, err)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "foto.png", attrs.Metadata["filename"])
	assert.Equal(t, util.Checksum(data), attrs.Metadata["sha256"])
}

func TestBlobStorage_SaveTooLargeNamesTheLimit(t *testing.T) {
	store := newTestStorage(t, 1024)

	_, err := store.Save(context.Background(), &service.Upload{Prefix: "orders", Filename: "big.bin", Content: bytes.NewReader(make([]byte, 2048))})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "1.0 KB")
}
