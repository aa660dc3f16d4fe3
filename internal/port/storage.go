package port

import (
	"context"
	"io"
)

// UploadInput describes one archived document, such as a rendered invoice PDF.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput is the archive location of a stored object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage is the invoice archive: rendered PDFs go in at submission
// time, and administrators fetch them later through short-lived download URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
