package blob

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested blob does not exist in the store.
var ErrNotFound = errors.New("blob not found")

// Store is durable byte storage addressed by a logical URL of the form
// /uploads/<subfolder>/<filename>.
type Store interface {
	// Save writes the payload under subfolder/filename and returns the
	// logical URL. A second save with the same subfolder and filename
	// silently overwrites.
	Save(ctx context.Context, data []byte, filename, subfolder string) (string, error)

	// Load returns the payload stored at the logical URL, or ErrNotFound.
	Load(ctx context.Context, url string) ([]byte, error)

	// Delete removes the blob at the logical URL. It returns false without
	// error when the blob was already absent; any other failure is an error.
	Delete(ctx context.Context, url string) (bool, error)

	// URL returns the logical URL Save would produce for the pair without
	// touching the store.
	URL(subfolder, filename string) string
}
