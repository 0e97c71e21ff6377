package storage

import "io"

// HostedImage is the handle returned by the external image host.
type HostedImage struct {
	ID        string
	URL       string
	DeleteURL string
}

// ImageHost transcodes and serves uploaded images from a CDN.
type ImageHost interface {
	Upload(data []byte, filename string) (*HostedImage, error)
	// Delete is best-effort; callers must treat failures as non-fatal.
	Delete(deleteURL string) error
}

// ObjectStorage archives raw uploaded bytes in an S3-compatible bucket.
type ObjectStorage interface {
	Upload(key string, reader io.Reader, size int64) error
	Delete(key string) error
}
