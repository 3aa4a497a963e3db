package validation

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/machipost-dev/machipost/internal/domain"
)

// ValidateImageBatch checks an uploaded batch against the attachment policy:
// at most maxFiles files, each with an allowed MIME type and at most maxFileSize
// bytes. The batch is all-or-nothing: any failing file rejects the whole batch
// and no file is opened for processing.
func ValidateImageBatch(fileHeaders []*multipart.FileHeader, allowedMimes []string, maxFiles int, maxFileSize int64) ([]*domain.PendingImage, error) {
	if len(fileHeaders) == 0 {
		return nil, nil
	}
	if len(fileHeaders) > maxFiles {
		return nil, fmt.Errorf("%w: got %d files, limit is %d", ErrTooManyFiles, len(fileHeaders), maxFiles)
	}

	allowed := buildAllowedMimeMap(allowedMimes)

	// Validate the entire batch before opening anything, so a bad file
	// at any position means zero uploads are attempted.
	for _, fileHeader := range fileHeaders {
		mimeType, err := DetectMimeType(fileHeader)
		if err != nil {
			return nil, err
		}
		if !allowed[mimeType] {
			return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
		}
		if fileHeader.Size > maxFileSize {
			return nil, fmt.Errorf("%w: %s is %.1f MB, limit is %.0f MB",
				ErrFileTooLarge, fileHeader.Filename, FormatSizeMB(fileHeader.Size), FormatSizeMB(maxFileSize))
		}
	}

	pending := make([]*domain.PendingImage, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			for _, p := range pending {
				p.Data.Close()
			}
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		mimeType, _ := DetectMimeType(fileHeader)
		pending = append(pending, &domain.PendingImage{
			Filename:  fileHeader.Filename,
			SizeBytes: fileHeader.Size,
			MimeType:  mimeType,
			Data:      file,
		})
	}

	return pending, nil
}

func buildAllowedMimeMap(mimes []string) map[string]bool {
	allowed := make(map[string]bool, len(mimes))
	for _, m := range mimes {
		allowed[m] = true
	}
	return allowed
}

// DetectMimeType resolves a file's MIME type from its Content-Type header,
// falling back to the filename extension for missing or generic values.
func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detected := mime.TypeByExtension(ext); detected != "" {
			mimeType = detected
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("%w: could not detect MIME type for file %s", ErrInvalidMimeType, fileHeader.Filename)
	}

	return mimeType, nil
}
