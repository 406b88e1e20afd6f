// Package blob stores record photos in an S3-compatible object store.
package blob

import "context"

// Photo points at one stored image.
type Photo struct {
	// URL is the public URL persisted on the record.
	URL string
	// Path is the storage key, used later for deletion.
	Path string
}

// Store is the photo storage contract consumed by the record service.
type Store interface {
	// Upload stores data under an owner-scoped key and returns the public
	// URL and storage path.
	Upload(ctx context.Context, ownerID, contentType string, data []byte) (*Photo, error)

	// Delete removes the object at path. Missing objects are not an error.
	Delete(ctx context.Context, path string) error

	// PresignGet returns a short-lived download link for path.
	PresignGet(ctx context.Context, path string) (string, error)
}
