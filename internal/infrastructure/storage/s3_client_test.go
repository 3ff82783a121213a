package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/storefront-media/internal/infrastructure/config"
)

func newTestStore(t *testing.T, cfg config.S3Config) *S3Store {
	t.Helper()
	store, err := NewS3Store(cfg, Limits{})
	require.NoError(t, err)
	return store
}

func TestS3Store_PublicURL(t *testing.T) {
	t.Run("uses the configured public url with a bucket segment", func(t *testing.T) {
		store := newTestStore(t, config.S3Config{
			Bucket:          "media",
			Region:          "us-east-1",
			AccessKeyID:     "test",
			SecretAccessKey: "test",
			PublicURL:       "https://cdn.shop.example/",
		})

		url := store.PublicURL("products/thumbnails/123-abc.jpg")

		assert.Equal(t, "https://cdn.shop.example/media/products/thumbnails/123-abc.jpg", url)
	})

	t.Run("falls back to the virtual-hosted aws shape", func(t *testing.T) {
		store := newTestStore(t, config.S3Config{
			Bucket:          "media",
			Region:          "eu-west-1",
			AccessKeyID:     "test",
			SecretAccessKey: "test",
		})

		url := store.PublicURL("products/full/123-abc.jpg")

		assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/products/full/123-abc.jpg", url)
	})

	t.Run("is deterministic", func(t *testing.T) {
		store := newTestStore(t, config.S3Config{
			Bucket: "media", Region: "us-east-1", AccessKeyID: "test", SecretAccessKey: "test",
		})

		assert.Equal(t, store.PublicURL("full/a.jpg"), store.PublicURL("full/a.jpg"))
	})
}

func TestS3Store_KeyFromURL(t *testing.T) {
	store := newTestStore(t, config.S3Config{
		Bucket:          "media",
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		PublicURL:       "https://cdn.shop.example",
	})

	t.Run("round-trips every key through its public url", func(t *testing.T) {
		keys := []string{
			"products/thumbnails/1693526400-abc.jpg",
			"products/full/1693526400-abc.jpg",
			"logos/raw/1693526400-abc.svg",
		}

		for _, key := range keys {
			got, ok := store.KeyFromURL(store.PublicURL(key))
			require.True(t, ok, "key %q", key)
			assert.Equal(t, key, got)
		}
	})

	t.Run("rejects foreign urls", func(t *testing.T) {
		foreign := []string{
			"https://other-host.example/media/full/a.jpg",
			"https://cdn.shop.example/other-bucket/full/a.jpg",
			"data:image/png;base64,AAAA",
			"",
		}

		for _, url := range foreign {
			_, ok := store.KeyFromURL(url)
			assert.False(t, ok, "url %q", url)
		}
	})
}

func TestS3Store_Delete_ForeignURL(t *testing.T) {
	// A url outside the store's bucket convention must be rejected without
	// any network call; the nil-endpoint client would fail loudly otherwise.
	store := newTestStore(t, config.S3Config{
		Bucket:          "media",
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		PublicURL:       "https://cdn.shop.example",
	})

	deleted, err := store.Delete(context.Background(), "data:image/png;base64,AAAA")

	require.NoError(t, err)
	assert.False(t, deleted)
}
