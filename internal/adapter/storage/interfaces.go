package storage

import (
	"context"
	"image"

	"github.com/shopstack/storefront-media/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStore addresses derivatives in a durable object store. Put never
// overwrites an existing key; Delete reverse-resolves a public URL and
// reports false for URLs the store does not own.
type ObjectStore interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
	Delete(ctx context.Context, url string) (bool, error)
}

// BitmapDecoder turns owned bytes or a data URI into an in-memory raster.
type BitmapDecoder interface {
	Decode(input entity.RawImageInput) (image.Image, error)
}

// Transformer produces the thumbnail/full derivative pair for a decoded
// raster.
type Transformer interface {
	Transform(img image.Image) (entity.DerivativePair, error)
}
