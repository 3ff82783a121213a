package handler

import (
	"context"

	"github.com/shopstack/storefront-media/internal/domain/entity"
	"github.com/shopstack/storefront-media/internal/usecase/media"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type MediaService interface {
	UploadImage(ctx context.Context, input entity.RawImageInput, folder string, variant media.Variant) (*entity.StoredAsset, error)
	BatchUpload(ctx context.Context, inputs []entity.RawImageInput, maxCount int, folder string, variant media.Variant) ([]entity.StoredAsset, error)
	DeleteImage(ctx context.Context, url string) bool
}
