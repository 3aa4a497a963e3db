package validation

import "errors"

// ErrPayloadTooLarge is returned when the request body exceeds size limits
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrInvalidMimeType is returned when an uploaded file has a disallowed MIME type
var ErrInvalidMimeType = errors.New("invalid MIME type")

// ErrTooManyFiles is returned when a batch exceeds the per-post attachment limit
var ErrTooManyFiles = errors.New("too many files")

// ErrFileTooLarge is returned when a single file exceeds the per-file size limit
var ErrFileTooLarge = errors.New("file too large")
