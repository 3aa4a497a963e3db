package domain

import "mime/multipart"

// PendingImage is an uploaded file that passed batch validation and is
// waiting to be downscaled and stored.
type PendingImage struct {
	Filename  string
	SizeBytes int64
	MimeType  string
	Data      multipart.File
}
