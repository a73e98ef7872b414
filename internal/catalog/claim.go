package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"studio-site/internal/cdn"
)

// ClaimedCaption replaces whatever caption the image had. The overwrite is
// deliberate and is not restored on unclaim.
const ClaimedCaption = "This piece is no longer available. If you'd like a similar custom design, please email the studio."

// OverlayFunc bakes the "claimed" marking into image bytes and returns the
// new bytes with their content type.
type OverlayFunc func(data []byte) ([]byte, string, error)

// Claimer runs the claim transition: fetch the asset, bake the overlay,
// overwrite it in place, and only then commit the attribute changes. The
// external calls are the only long-blocking work in the system, so they run
// under a bounded timeout and are never retried. Retrying an
// overwrite-in-place risks double-applying the overlay.
type Claimer struct {
	catalog *Service
	objects cdn.ObjectStore
	overlay OverlayFunc
	timeout time.Duration
}

func NewClaimer(catalog *Service, objects cdn.ObjectStore, overlay OverlayFunc, timeout time.Duration) *Claimer {
	return &Claimer{
		catalog: catalog,
		objects: objects,
		overlay: overlay,
		timeout: timeout,
	}
}

// Claim marks the image as no longer available. No attribute is written
// until the transformed bytes are safely re-uploaded; a failure anywhere in
// the external sequence leaves flag, caption, and revision untouched.
func (c *Claimer) Claim(ctx context.Context, col Collection, rawURL string) (string, error) {
	member, err := c.catalog.Contains(ctx, col, rawURL)
	if err != nil {
		return "", err
	}
	if !member {
		return "", ErrNotFound
	}

	extCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	original, err := c.objects.Fetch(extCtx, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}

	marked, contentType, err := c.overlay(original)
	if err != nil {
		return "", fmt.Errorf("failed to apply overlay: %w", err)
	}

	if err := c.objects.Overwrite(extCtx, rawURL, marked, contentType); err != nil {
		return "", fmt.Errorf("failed to overwrite image: %w", err)
	}

	// Upload succeeded; commit the attribute changes.
	if err := c.catalog.SetClaimed(ctx, rawURL, true); err != nil {
		return "", err
	}
	if err := c.catalog.SetCaption(ctx, rawURL, ClaimedCaption); err != nil {
		return "", err
	}
	rev := MintRevision(c.catalog.Now())
	if err := c.catalog.SetRevision(ctx, rawURL, rev); err != nil {
		return "", err
	}

	log.Printf("Claimed image %s (rev %s)", Canonical(rawURL), rev)
	return rev, nil
}

// Unclaim clears the availability flag only. The baked-in overlay and the
// overwritten caption remain; making this symmetric needs product sign-off.
func (c *Claimer) Unclaim(ctx context.Context, rawURL string) error {
	return c.catalog.SetClaimed(ctx, rawURL, false)
}

// Replace overwrites the bytes behind targetURL with the bytes behind
// sourceURL and mints a fresh revision so caches refetch.
func (c *Claimer) Replace(ctx context.Context, sourceURL, targetURL string) (string, error) {
	extCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := c.objects.Fetch(extCtx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source image: %w", err)
	}
	if err := c.objects.Overwrite(extCtx, targetURL, data, ""); err != nil {
		return "", fmt.Errorf("failed to overwrite target image: %w", err)
	}

	rev := MintRevision(c.catalog.Now())
	if err := c.catalog.SetRevision(ctx, targetURL, rev); err != nil {
		return "", err
	}
	return rev, nil
}

// DeleteImage removes the image from the collection, clears every attribute
// entry, and best-effort deletes the backing asset. A CDN delete failure is
// logged but does not block the catalog removal.
func (c *Claimer) DeleteImage(ctx context.Context, col Collection, rawURL string) error {
	if err := c.objects.Delete(ctx, rawURL); err != nil {
		log.Printf("Warning: failed to delete asset for %s: %v", Canonical(rawURL), err)
	}
	if err := c.catalog.RemoveImage(ctx, col, rawURL); err != nil {
		return err
	}
	return c.catalog.ClearAttributes(ctx, rawURL)
}
