package storage_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shopstack/storefront-media/internal/infrastructure/config"
	"github.com/shopstack/storefront-media/internal/infrastructure/storage"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
)

func setupStore(t *testing.T) *storage.S3Store {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start minio container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "http")
	if err != nil {
		t.Fatalf("failed to get container endpoint: %v", err)
	}

	store, err := storage.NewS3Store(config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		Bucket:          "storefront-media-test",
		AccessKeyID:     testAccessKey,
		SecretAccessKey: testSecretKey,
		UsePathStyle:    true,
	}, storage.Limits{
		MaxObjectBytes: 10 << 20,
		AllowedMIME:    []string{"image/jpeg", "image/png"},
	})
	require.NoError(t, err)

	return store
}

func TestS3Store_EnsureBucket_Idempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx))
	require.NoError(t, store.EnsureBucket(ctx))
}

func TestS3Store_EnsureBucket_ConcurrentCallers(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.EnsureBucket(ctx)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
}

func TestS3Store_PutAndDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx))

	data := []byte("jpeg derivative payload")
	url, err := store.Put(ctx, "products/thumbnails/123-abc.jpg", data, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, store.PublicURL("products/thumbnails/123-abc.jpg"), url)

	t.Run("a key is never overwritten", func(t *testing.T) {
		_, err := store.Put(ctx, "products/thumbnails/123-abc.jpg", []byte("other payload"), "image/jpeg")
		assert.Error(t, err)
	})

	t.Run("rejects disallowed content types client-side", func(t *testing.T) {
		_, err := store.Put(ctx, "products/raw/123-abc.bin", data, "application/octet-stream")
		assert.Error(t, err)
	})

	t.Run("rejects over-limit payloads client-side", func(t *testing.T) {
		_, err := store.Put(ctx, "products/raw/huge.jpg", make([]byte, 11<<20), "image/jpeg")
		assert.Error(t, err)
	})

	t.Run("deletes by public url", func(t *testing.T) {
		deleted, err := store.Delete(ctx, url)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("foreign urls are rejected without error", func(t *testing.T) {
		deleted, err := store.Delete(ctx, "https://elsewhere.example/media/full/a.jpg")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
