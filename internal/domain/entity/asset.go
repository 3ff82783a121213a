package entity

// ImageDerivative is one resized, re-encoded copy of a source image.
type ImageDerivative struct {
	Bytes    []byte
	MIME     string
	Width    int
	Height   int
	ByteSize int64
}

// DerivativePair holds the two derivatives the pipeline always produces
// together: a thumbnail bounded by the small envelope and a compressed
// full-size version bounded by the large one.
type DerivativePair struct {
	Thumbnail ImageDerivative
	Full      ImageDerivative
}

// AssetMetadata carries size telemetry for a fully optimized upload.
type AssetMetadata struct {
	OriginalSize     int64   `json:"original_size"`
	ThumbnailSize    int64   `json:"thumbnail_size"`
	FullSize         int64   `json:"full_size"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// StoredAsset is the only value the pipeline hands back to its callers.
// IsOptimized is false whenever a fallback rung produced the URLs, in which
// case Metadata is absent and both URLs are equal.
type StoredAsset struct {
	ThumbnailURL string         `json:"thumbnail_url"`
	FullURL      string         `json:"full_url"`
	IsOptimized  bool           `json:"is_optimized"`
	Metadata     *AssetMetadata `json:"metadata,omitempty"`
}

// PassthroughAsset wraps an already-canonical or externally hosted URL
// without touching it.
func PassthroughAsset(url string) *StoredAsset {
	return &StoredAsset{ThumbnailURL: url, FullURL: url, IsOptimized: false}
}
