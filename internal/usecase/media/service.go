package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopstack/storefront-media/internal/adapter/storage"
	"github.com/shopstack/storefront-media/internal/domain"
	"github.com/shopstack/storefront-media/internal/domain/entity"
	"github.com/shopstack/storefront-media/internal/infrastructure/config"
)

const (
	tierThumbnails = "thumbnails"
	tierFull       = "full"
	tierRaw        = "raw"
)

// Service sequences the upload pipeline: validate, decode, transform, store.
// Every stage past validation is wrapped in the fallback ladder, so the only
// error UploadImage can return is a *domain.ValidationError — an internal
// hiccup degrades the result instead of losing the caller's image.
type Service struct {
	store       storage.ObjectStore
	decoder     storage.BitmapDecoder
	transformer storage.Transformer
	rules       map[Variant]Rules
	logger      *zap.Logger
}

func NewService(
	store storage.ObjectStore,
	decoder storage.BitmapDecoder,
	transformer storage.Transformer,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:       store,
		decoder:     decoder,
		transformer: transformer,
		rules: map[Variant]Rules{
			VariantProduct: ProductRules(cfg),
			VariantLogo:    LogoRules(cfg),
		},
		logger: logger,
	}
}

func (s *Service) UploadImage(ctx context.Context, input entity.RawImageInput, folder string, variant Variant) (*entity.StoredAsset, error) {
	// Remote and already-stored URLs are treated as finalized references;
	// re-fetching them would be redundant work.
	if input.Kind == entity.InputRemoteURL {
		return entity.PassthroughAsset(input.RemoteURL), nil
	}

	payload, _, payloadErr := input.Payload()

	mime := input.DeclaredMIME()
	if (mime == "" || mime == "application/octet-stream") && payloadErr == nil {
		mime = mimetype.Detect(payload).String()
	}

	if res := Validate(input.DeclaredSize(), mime, s.rules[variant]); !res.Valid {
		return nil, &domain.ValidationError{Violations: res.Errors}
	}

	if payloadErr != nil {
		s.logger.Warn("payload unreadable, keeping inline reference", zap.Error(payloadErr))
		return s.inlineFallback(payload, mime, input), nil
	}

	img, err := s.decoder.Decode(input)
	if err != nil {
		s.logger.Warn("decode failed, storing original", zap.Error(err))
		return s.rawFallback(ctx, payload, mime, folder, input), nil
	}

	pair, err := s.transformer.Transform(img)
	if err != nil {
		s.logger.Warn("transform failed, storing original", zap.Error(err))
		return s.rawFallback(ctx, payload, mime, folder, input), nil
	}

	if err := s.store.EnsureBucket(ctx); err != nil {
		s.logger.Warn("bucket unavailable, storing original", zap.Error(err))
		return s.rawFallback(ctx, payload, mime, folder, input), nil
	}

	thumbURL, err := s.store.Put(ctx, newKey(folder, tierThumbnails, ".jpg"), pair.Thumbnail.Bytes, pair.Thumbnail.MIME)
	if err != nil {
		s.logger.Warn("thumbnail upload failed, storing original", zap.Error(err))
		return s.rawFallback(ctx, payload, mime, folder, input), nil
	}

	fullSize := pair.Full.ByteSize
	fullURL, err := s.store.Put(ctx, newKey(folder, tierFull, ".jpg"), pair.Full.Bytes, pair.Full.MIME)
	if err != nil {
		// The thumbnail made it; reuse its URL rather than discarding the
		// whole upload. Metadata then describes the thumbnail bytes, since
		// those are what the full URL serves.
		s.logger.Warn("full-size upload failed, reusing thumbnail url", zap.Error(err))
		fullURL = thumbURL
		fullSize = pair.Thumbnail.ByteSize
	}

	originalSize := int64(len(payload))
	var ratio float64
	if originalSize > 0 {
		ratio = float64(originalSize-fullSize) / float64(originalSize)
	}

	return &entity.StoredAsset{
		ThumbnailURL: thumbURL,
		FullURL:      fullURL,
		IsOptimized:  true,
		Metadata: &entity.AssetMetadata{
			OriginalSize:     originalSize,
			ThumbnailSize:    pair.Thumbnail.ByteSize,
			FullSize:         fullSize,
			CompressionRatio: ratio,
		},
	}, nil
}

// BatchUpload processes inputs sequentially. Submitting more images than
// maxCount slots rejects the whole batch before any work begins; an item
// failing validation mid-batch is skipped and reported without aborting the
// rest.
func (s *Service) BatchUpload(ctx context.Context, inputs []entity.RawImageInput, maxCount int, folder string, variant Variant) ([]entity.StoredAsset, error) {
	if maxCount > 0 && len(inputs) > maxCount {
		return nil, fmt.Errorf("%w: %d images submitted, %d slots available",
			domain.ErrImageLimitExceeded, len(inputs), maxCount)
	}

	assets := make([]entity.StoredAsset, 0, len(inputs))
	var errs []error

	for i, input := range inputs {
		asset, err := s.UploadImage(ctx, input, folder, variant)
		if err != nil {
			errs = append(errs, &domain.BatchItemError{Index: i, Err: err})
			continue
		}
		assets = append(assets, *asset)
	}

	return assets, errors.Join(errs...)
}

// DeleteImage removes a previously stored asset. Failures are reported as
// false, never as an error: an orphaned object is an accepted trade-off, a
// blocked caller is not.
func (s *Service) DeleteImage(ctx context.Context, url string) bool {
	deleted, err := s.store.Delete(ctx, url)
	if err != nil {
		s.logger.Warn("delete failed, object may be orphaned",
			zap.String("url", url), zap.Error(err))
		return false
	}
	return deleted
}

// rawFallback stores the original, un-transformed bytes under a single key.
// If the store is unreachable the ladder drops to an inline data URI, which
// has no network dependency left to fail.
func (s *Service) rawFallback(ctx context.Context, payload []byte, mime, folder string, input entity.RawImageInput) *entity.StoredAsset {
	if err := s.store.EnsureBucket(ctx); err != nil {
		s.logger.Warn("bucket unavailable for raw upload", zap.Error(err))
		return s.inlineFallback(payload, mime, input)
	}

	key := newKey(folder, tierRaw, extensionFor(mime, input.Filename))
	url, err := s.store.Put(ctx, key, payload, mime)
	if err != nil {
		s.logger.Warn("raw upload failed, keeping inline reference", zap.Error(err))
		return s.inlineFallback(payload, mime, input)
	}

	return entity.PassthroughAsset(url)
}

func (s *Service) inlineFallback(payload []byte, mime string, input entity.RawImageInput) *entity.StoredAsset {
	if input.Kind == entity.InputDataURI {
		return entity.PassthroughAsset(input.DataURI)
	}
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
	return entity.PassthroughAsset(uri)
}

// newKey builds a collision-resistant storage key scoped by tier. Keys are
// never reused, so puts can rely on uniqueness instead of overwrite.
func newKey(folder, tier, ext string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
	if folder == "" {
		return fmt.Sprintf("%s/%s", tier, name)
	}
	return fmt.Sprintf("%s/%s/%s", folder, tier, name)
}

func extensionFor(mime, filename string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/svg+xml":
		return ".svg"
	}
	if ext := path.Ext(filename); ext != "" {
		return ext
	}
	return ".bin"
}
