package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	"github.com/disintegration/imaging"

	"github.com/shopstack/storefront-media/internal/domain/entity"
	"github.com/shopstack/storefront-media/internal/infrastructure/config"
)

const outputMIME = "image/jpeg"

type envelope struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// Engine produces the thumbnail/full derivative pair for a decoded raster.
// Both derivatives preserve aspect ratio, are never upscaled, and are
// re-encoded as JPEG with the thumbnail at equal-or-lower quality than the
// full image.
type Engine struct {
	thumbnail envelope
	full      envelope
}

func NewEngine(cfg config.PipelineConfig) *Engine {
	thumbQuality := cfg.ThumbnailQuality
	if thumbQuality > cfg.FullQuality {
		// thumbnail quality must never exceed full quality
		thumbQuality = cfg.FullQuality
	}
	return &Engine{
		thumbnail: envelope{cfg.ThumbnailMaxWidth, cfg.ThumbnailMaxHeight, thumbQuality},
		full:      envelope{cfg.FullMaxWidth, cfg.FullMaxHeight, cfg.FullQuality},
	}
}

func (e *Engine) Transform(img image.Image) (entity.DerivativePair, error) {
	thumb, err := e.derive(img, e.thumbnail)
	if err != nil {
		return entity.DerivativePair{}, fmt.Errorf("thumbnail derivative: %w", err)
	}

	full, err := e.derive(img, e.full)
	if err != nil {
		return entity.DerivativePair{}, fmt.Errorf("full derivative: %w", err)
	}

	return entity.DerivativePair{Thumbnail: thumb, Full: full}, nil
}

func (e *Engine) derive(img image.Image, env envelope) (entity.ImageDerivative, error) {
	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), env.maxWidth, env.maxHeight)

	resized := img
	if width != bounds.Dx() || height != bounds.Dy() {
		resized = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: env.quality}); err != nil {
		return entity.ImageDerivative{}, fmt.Errorf("encoding jpeg: %w", err)
	}

	return entity.ImageDerivative{
		Bytes:    buf.Bytes(),
		MIME:     outputMIME,
		Width:    width,
		Height:   height,
		ByteSize: int64(buf.Len()),
	}, nil
}

// fitWithin scales (srcW, srcH) to fit inside (maxW, maxH) preserving aspect
// ratio. Sources already inside the envelope keep their dimensions.
func fitWithin(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}

	ratio := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	width := int(math.Round(float64(srcW) * ratio))
	height := int(math.Round(float64(srcH) * ratio))

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
