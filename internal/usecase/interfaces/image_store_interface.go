package interfaces

import (
	"context"
	"io"
)

// IImageStore abstracts object storage for uploaded source images.
//
// Upload writes the image under key and returns the URL persisted on the
// order; the admin dashboard links to it directly.

type IImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
}
