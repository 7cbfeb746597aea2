package filestorage

import (
	"io"

	"github.com/kaanb/courseboard/internal/pkg/apperrors"
)

// ErrFileNotFound is returned by Open when no blob exists under the given name.
var ErrFileNotFound = apperrors.ErrFileNotFound

// BlobStore is a content-addressed store for submission file bodies.
// Blobs are named by a generated opaque identifier, never by their original
// filename; metadata linking a blob back to its submission lives in the
// database, not in the store.
type BlobStore interface {
	// Save streams content into the store and returns the generated blob name.
	// origName is only consulted for its extension.
	Save(content io.Reader, origName string) (string, error)

	// Open returns a streaming reader for the named blob.
	// Returns ErrFileNotFound when no such blob exists.
	Open(name string) (io.ReadCloser, error)

	// Delete removes a blob. Deleting a missing blob is a no-op.
	Delete(name string) error
}
