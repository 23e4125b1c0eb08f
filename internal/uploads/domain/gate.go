package domain

import (
	"errors"
	"fmt"
)

// MaxUploadSize is the hard cap for a single photo: 10MB.
const MaxUploadSize = 10 << 20

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file exceeds %d bytes", MaxUploadSize)
)

var allowedMediaTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidateUpload gates a photo before any store call is made. A rejection
// here never touches the object store.
func ValidateUpload(contentType string, size int64) error {
	if _, ok := allowedMediaTypes[contentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// Extension returns the canonical file extension for an allowed media type.
func Extension(contentType string) string {
	return allowedMediaTypes[contentType]
}
