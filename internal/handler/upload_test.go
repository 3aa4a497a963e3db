package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUploadRequest(t *testing.T, filenames []string) *http.Request {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, img))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(pngData.Bytes())
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	t.Run("valid batch returns urls in selection order", func(t *testing.T) {
		h.uploads = &MockUploadService{
			MockStore: func(files []*domain.PendingImage) ([]string, error) {
				require.Len(t, files, 2)
				assert.Equal(t, "a.png", files[0].Filename)
				assert.Equal(t, "b.png", files[1].Filename)
				return []string{"/media/1.png", "/media/2.png"}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, []string{"a.png", "b.png"}))

		require.Equal(t, http.StatusOK, rr.Code)

		var body uploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, []string{"/media/1.png", "/media/2.png"}, body.Urls)
	})

	t.Run("six files rejected as a unit", func(t *testing.T) {
		stored := false
		h.uploads = &MockUploadService{
			MockStore: func(files []*domain.PendingImage) ([]string, error) {
				stored = true
				return nil, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, []string{"1.png", "2.png", "3.png", "4.png", "5.png", "6.png"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, stored, "nothing may reach storage when the batch is invalid")
	})

	t.Run("disallowed type rejects the whole batch", func(t *testing.T) {
		h.uploads = &MockUploadService{}

		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		var pngData bytes.Buffer
		require.NoError(t, png.Encode(&pngData, img))

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("images", "ok.png")
		require.NoError(t, err)
		_, _ = part.Write(pngData.Bytes())
		part, err = writer.CreateFormFile("images", "notes.pdf")
		require.NoError(t, err)
		_, _ = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty form returns empty url list", func(t *testing.T) {
		h.uploads = &MockUploadService{}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, buildUploadRequest(t, nil))

		require.Equal(t, http.StatusOK, rr.Code)

		var body uploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Empty(t, body.Urls)
	})
}
