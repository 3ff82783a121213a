package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/shopstack/storefront-media/internal/domain"
	"github.com/shopstack/storefront-media/internal/domain/entity"
)

// Decoder rasterizes owned bytes and data URIs through the stdlib image
// registry (jpeg, png, gif, webp). Remote URLs carry no payload and are
// short-circuited by the orchestrator before they get here.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(input entity.RawImageInput) (image.Image, error) {
	if input.Kind == entity.InputRemoteURL {
		return nil, fmt.Errorf("decoding remote url: %w", domain.ErrUnsupportedInput)
	}

	data, _, err := input.Payload()
	if err != nil {
		return nil, fmt.Errorf("resolving payload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotDecodable, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: decoded raster has empty bounds", domain.ErrNotDecodable)
	}

	return img, nil
}
