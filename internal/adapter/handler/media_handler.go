package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/shopstack/storefront-media/internal/adapter/handler/dto/request"
	"github.com/shopstack/storefront-media/internal/adapter/handler/dto/response"
	"github.com/shopstack/storefront-media/internal/domain"
	"github.com/shopstack/storefront-media/internal/domain/entity"
	"github.com/shopstack/storefront-media/internal/pkg/apperror"
	"github.com/shopstack/storefront-media/internal/pkg/httputil"
	"github.com/shopstack/storefront-media/internal/usecase/media"
)

const maxUploadSize = 12 << 20 // 12MB, validation applies the real limits

type MediaHandler struct {
	mediaSvc  MediaService
	batchSize int
}

func NewMediaHandler(mediaSvc MediaService, batchSize int) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc, batchSize: batchSize}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	input, folder, variant, ok := h.parseUpload(c)
	if !ok {
		return
	}

	asset, err := h.mediaSvc.UploadImage(c.Request.Context(), input, folder, variant)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httputil.UnprocessableEntity(c, validationErr.Violations)
			return
		}
		httputil.HandleError(c, apperror.Internal(err))
		return
	}

	httputil.Created(c, response.AssetFromEntity(asset))
}

func (h *MediaHandler) BatchUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.batchSize)*maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		httputil.HandleError(c, requestError(err, "INVALID_FORM", "multipart form is required"))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		httputil.HandleError(c, apperror.New("INVALID_FILE", "at least one file is required", http.StatusBadRequest))
		return
	}

	maxCount := h.batchSize
	if raw := c.PostForm("max_count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < maxCount {
			maxCount = n
		}
	}

	inputs := make([]entity.RawImageInput, 0, len(files))
	for _, fh := range files {
		input, err := inputFromFile(fh)
		if err != nil {
			httputil.HandleError(c, requestError(err, "INVALID_FILE", "file could not be read"))
			return
		}
		inputs = append(inputs, input)
	}

	folder := c.PostForm("folder")
	variant := parseVariant(c.PostForm("variant"))

	assets, err := h.mediaSvc.BatchUpload(c.Request.Context(), inputs, maxCount, folder, variant)
	if err != nil && errors.Is(err, domain.ErrImageLimitExceeded) {
		httputil.HandleError(c, apperror.New("LIMIT_EXCEEDED", err.Error(), http.StatusBadRequest))
		return
	}

	httputil.Created(c, response.Batch{
		Assets:   response.AssetsFromEntities(assets),
		Rejected: rejectionsFrom(err),
	})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	var req request.DeleteImage
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleError(c, requestError(err, "INVALID_BODY", "url is required"))
		return
	}

	deleted := h.mediaSvc.DeleteImage(c.Request.Context(), req.URL)
	httputil.OK(c, response.Delete{Deleted: deleted})
}

// parseUpload accepts either a multipart "file" field or a JSON body with a
// data URI or remote URL, mirroring the shapes the product and logo forms
// submit.
func (h *MediaHandler) parseUpload(c *gin.Context) (entity.RawImageInput, string, media.Variant, bool) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/") {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			httputil.HandleError(c, requestError(err, "INVALID_FILE", "file is required"))
			return entity.RawImageInput{}, "", 0, false
		}
		defer file.Close()

		input, err := inputFromReader(file, header)
		if err != nil {
			httputil.HandleError(c, requestError(err, "INVALID_FILE", "file could not be read"))
			return entity.RawImageInput{}, "", 0, false
		}

		return input, c.PostForm("folder"), parseVariant(c.PostForm("variant")), true
	}

	var req request.UploadImage
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleError(c, requestError(err, "INVALID_BODY", "request body is invalid"))
		return entity.RawImageInput{}, "", 0, false
	}

	switch {
	case req.DataURI != "":
		return entity.DataURIInput(req.DataURI), req.Folder, parseVariant(req.Variant), true
	case req.URL != "":
		return entity.RemoteURLInput(req.URL), req.Folder, parseVariant(req.Variant), true
	default:
		httputil.HandleError(c, apperror.BadRequest("either data_uri or url is required"))
		return entity.RawImageInput{}, "", 0, false
	}
}

// requestError maps a failed body read to its envelope. MaxBytesReader
// overflow surfaces as 413 so oversized uploads are distinguishable from
// malformed ones.
func requestError(err error, code, message string) *apperror.AppError {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return apperror.PayloadTooLarge(fmt.Sprintf("request body exceeds %d bytes", maxBytes.Limit))
	}
	return apperror.New(code, message, http.StatusBadRequest)
}

// rejectionsFrom unpacks the joined per-item errors of a partial batch into
// the response shape, one entry per rejected index.
func rejectionsFrom(err error) []response.Rejection {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []response.Rejection{{Reason: err.Error()}}
	}

	rejections := make([]response.Rejection, 0, len(joined.Unwrap()))
	for _, itemErr := range joined.Unwrap() {
		var item *domain.BatchItemError
		if errors.As(itemErr, &item) {
			rejections = append(rejections, response.Rejection{Index: item.Index, Reason: item.Err.Error()})
			continue
		}
		rejections = append(rejections, response.Rejection{Reason: itemErr.Error()})
	}
	return rejections
}

func inputFromFile(fh *multipart.FileHeader) (entity.RawImageInput, error) {
	file, err := fh.Open()
	if err != nil {
		return entity.RawImageInput{}, err
	}
	defer file.Close()

	return inputFromReader(file, fh)
}

func inputFromReader(file multipart.File, header *multipart.FileHeader) (entity.RawImageInput, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return entity.RawImageInput{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	return entity.BytesInput(data, header.Filename, contentType), nil
}

func parseVariant(raw string) media.Variant {
	if raw == "logo" {
		return media.VariantLogo
	}
	return media.VariantProduct
}
