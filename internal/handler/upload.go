package handler

import (
	"errors"
	"fmt"
	"net/http"

	internal_errors "github.com/machipost-dev/machipost/internal/errors"
	"github.com/machipost-dev/machipost/internal/middleware/metrics"
	"github.com/machipost-dev/machipost/internal/utils"
	"github.com/machipost-dev/machipost/internal/validation"
)

type uploadResponse struct {
	Urls []string `json:"urls"`
}

// UploadHandler ingests the "images" multipart field: the whole batch is
// validated up front (count, type, per-file size) and rejected as a unit on
// any failure, then each accepted image is downscaled and stored. The
// response lists public URLs in selection order; the client puts them into
// the post form.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := validation.CalculateMaxRequestSize(
		h.Public.MaxAttachmentSize*int64(h.Public.MaxFilesPerPost), 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		maxSizeMB := validation.FormatSizeMB(h.Public.MaxAttachmentSize)
		utils.WriteErrorAndStatusCode(w, internal_errors.BadRequest(fmt.Sprintf(
			"Upload too large. Each image must be under %.0f MB", maxSizeMB)))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	files := r.MultipartForm.File["images"]
	pending, err := validation.ValidateImageBatch(
		files,
		h.Public.AllowedImageMimeTypes,
		h.Public.MaxFilesPerPost,
		h.Public.MaxAttachmentSize,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, uploadValidationError(err, h.Public.MaxFilesPerPost))
		return
	}
	defer func() {
		// storeOne closes files it reached; this covers the ones it didn't
		for _, p := range pending {
			p.Data.Close()
		}
	}()

	urls, err := h.uploads.Store(pending)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.ImagesProcessed.Add(float64(len(urls)))
	writeJSON(w, uploadResponse{Urls: urls})
}

// uploadValidationError maps batch validation failures to 400s with
// user-facing messages.
func uploadValidationError(err error, maxFiles int) error {
	switch {
	case errors.Is(err, validation.ErrTooManyFiles):
		return internal_errors.BadRequest(fmt.Sprintf("At most %d images per post", maxFiles))
	case errors.Is(err, validation.ErrInvalidMimeType),
		errors.Is(err, validation.ErrFileTooLarge),
		errors.Is(err, validation.ErrPayloadTooLarge):
		return internal_errors.BadRequest(err.Error())
	default:
		return err
	}
}
