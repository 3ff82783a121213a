package response

import (
	"github.com/shopstack/storefront-media/internal/domain/entity"
)

type AssetMetadata struct {
	OriginalSize     int64   `json:"original_size"`
	ThumbnailSize    int64   `json:"thumbnail_size"`
	FullSize         int64   `json:"full_size"`
	CompressionRatio float64 `json:"compression_ratio"`
}

type Asset struct {
	ThumbnailURL string         `json:"thumbnail_url"`
	FullURL      string         `json:"full_url"`
	IsOptimized  bool           `json:"is_optimized"`
	Metadata     *AssetMetadata `json:"metadata,omitempty"`
}

// Rejection names one batch item that was skipped and why.
type Rejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type Batch struct {
	Assets   []Asset     `json:"assets"`
	Rejected []Rejection `json:"rejected,omitempty"`
}

type Delete struct {
	Deleted bool `json:"deleted"`
}

func AssetFromEntity(a *entity.StoredAsset) Asset {
	out := Asset{
		ThumbnailURL: a.ThumbnailURL,
		FullURL:      a.FullURL,
		IsOptimized:  a.IsOptimized,
	}
	if a.Metadata != nil {
		out.Metadata = &AssetMetadata{
			OriginalSize:     a.Metadata.OriginalSize,
			ThumbnailSize:    a.Metadata.ThumbnailSize,
			FullSize:         a.Metadata.FullSize,
			CompressionRatio: a.Metadata.CompressionRatio,
		}
	}
	return out
}

func AssetsFromEntities(assets []entity.StoredAsset) []Asset {
	out := make([]Asset, 0, len(assets))
	for i := range assets {
		out = append(out, AssetFromEntity(&assets[i]))
	}
	return out
}
