package catalog

import (
	"context"
	"fmt"
)

// legacyFlashKey is a pre-rename list key that may still hold the flash
// collection. A flash read that finds nothing probes it and migrates.
const legacyFlashKey = "designs-images"

// Images returns the collection's ordered identifiers. Duplicate canonical
// identities are collapsed to first-occurrence order and the collapsed list
// is persisted before returning (self-healing read).
func (s *Service) Images(ctx context.Context, c Collection) ([]string, error) {
	key := c.listKey()

	urls, err := s.store.LRange(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(urls) == 0 && c == CollectionFlash {
		urls, err = s.migrateLegacyFlash(ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(urls) == 0 {
		return nil, nil
	}

	deduped := dedupe(urls)
	if len(deduped) != len(urls) {
		if err := s.rewrite(ctx, key, deduped); err != nil {
			return nil, fmt.Errorf("failed to persist deduped list %s: %w", key, err)
		}
	}
	return deduped, nil
}

// AddImage prepends the image unless an equivalent identity is already a
// member. New uploads show first in the admin grid.
func (s *Service) AddImage(ctx context.Context, c Collection, rawURL string) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()

	canon := Canonical(rawURL)
	urls, err := s.Images(ctx, c)
	if err != nil {
		return err
	}
	for _, u := range urls {
		if Canonical(u) == canon {
			return nil
		}
	}
	return s.store.LPush(ctx, c.listKey(), canon)
}

// RemoveImage removes every stored representation of the image identity.
func (s *Service) RemoveImage(ctx context.Context, c Collection, rawURL string) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()

	for _, v := range Variants(rawURL) {
		if err := s.store.LRem(ctx, c.listKey(), v); err != nil {
			return err
		}
	}
	return nil
}

// Reorder replaces the stored sequence with the supplied one. The caller is
// expected to post a permutation of the current set; identifiers omitted from
// newOrder are dropped (operators prune by omission).
func (s *Service) Reorder(ctx context.Context, c Collection, newOrder []string) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()

	canonical := make([]string, 0, len(newOrder))
	for _, u := range newOrder {
		canonical = append(canonical, Canonical(u))
	}
	return s.rewrite(ctx, c.listKey(), dedupe(canonical))
}

// Shuffle applies one uniform random permutation to the stored sequence and
// persists it. Intended as an infrequent manual operator action.
func (s *Service) Shuffle(ctx context.Context, c Collection) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()

	urls, err := s.Images(ctx, c)
	if err != nil {
		return err
	}
	if len(urls) < 2 {
		return nil
	}
	// Fisher-Yates
	for i := len(urls) - 1; i > 0; i-- {
		j := s.Rand.Intn(i + 1)
		urls[i], urls[j] = urls[j], urls[i]
	}
	return s.rewrite(ctx, c.listKey(), urls)
}

// rewrite atomically (from the caller's point of view) replaces a list key.
func (s *Service) rewrite(ctx context.Context, key string, urls []string) error {
	if err := s.store.Del(ctx, key); err != nil {
		return err
	}
	if len(urls) == 0 {
		return nil
	}
	return s.store.RPush(ctx, key, urls...)
}

func (s *Service) migrateLegacyFlash(ctx context.Context) ([]string, error) {
	urls, err := s.store.LRange(ctx, legacyFlashKey)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, nil
	}
	if err := s.store.Del(ctx, legacyFlashKey); err != nil {
		return nil, err
	}
	if err := s.store.RPush(ctx, CollectionFlash.listKey(), urls...); err != nil {
		return nil, err
	}
	return urls, nil
}

// dedupe collapses duplicate canonical identities, keeping the first
// occurrence of each in order.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		canon := Canonical(u)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, u)
	}
	return out
}
