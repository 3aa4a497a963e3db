package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/machipost-dev/machipost/internal/domain"
	"github.com/machipost-dev/machipost/internal/imaging"

	"github.com/google/uuid"
)

type UploadService interface {
	Store(files []*domain.PendingImage) ([]string, error)
}

type MediaStorage interface {
	// Save stores an object under key and returns its public URL.
	Save(key string, data io.Reader) (string, error)

	// Read opens a stored object for reading.
	Read(key string) (io.ReadCloser, error)

	// Delete removes a stored object.
	Delete(key string) error
}

type Upload struct {
	media       MediaStorage
	maxWidth    int
	jpegQuality int
}

func NewUpload(media MediaStorage, maxWidth, jpegQuality int) *Upload {
	return &Upload{media: media, maxWidth: maxWidth, jpegQuality: jpegQuality}
}

// Store downscales and uploads a validated batch, one file at a time, and
// returns public URLs in the same order the files were selected. Batches are
// small (at most the per-post limit), so sequential uploads are fine.
func (u *Upload) Store(files []*domain.PendingImage) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := u.storeOne(file)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", file.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *Upload) storeOne(file *domain.PendingImage) (string, error) {
	defer file.Data.Close()

	processed, err := imaging.Downscale(file.Data, u.maxWidth, u.jpegQuality)
	if err != nil {
		return "", err
	}

	return u.media.Save(mediaKey(processed.Ext), bytes.NewReader(processed.Data))
}

// mediaKey builds a collision-resistant object name: timestamp plus a random
// token plus the encoded extension.
func mediaKey(ext string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s%s", time.Now().UTC().UnixMilli(), token, ext)
}
