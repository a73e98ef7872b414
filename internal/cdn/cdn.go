// Package cdn abstracts the hosted image store. Images are addressed by
// their public delivery URL; overwriting keeps the URL stable so viewers
// only see new bytes once their cache is busted.
package cdn

import (
	"context"
	"io"
)

type ObjectStore interface {
	// Upload stores a new object and returns its delivery URL.
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// Overwrite replaces the bytes behind an existing delivery URL in place.
	Overwrite(ctx context.Context, deliveryURL string, data []byte, contentType string) error
	// Fetch downloads the bytes behind a delivery URL.
	Fetch(ctx context.Context, deliveryURL string) ([]byte, error)
	// Delete removes the object behind a delivery URL.
	Delete(ctx context.Context, deliveryURL string) error
}
