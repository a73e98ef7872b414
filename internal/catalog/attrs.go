package catalog

import (
	"context"
	"strconv"
	"time"
)

// Hash keys of the sparse attribute maps. Captions are shared across
// collections; the rest are flash-scoped, matching the stored data layout.
const (
	keyCaptions   = "captions"
	keyCategories = "flash-categories"
	keySchedules  = "flash-schedule"
	keyHidden     = "flash-hidden"
	keyClaimed    = "flash-claimed"
	keyRevisions  = "flash-image-rev"
)

// FlashCategories is the fixed allow-list for the flash collection.
// Values outside it are silently ignored on write.
var FlashCategories = []string{
	"Fauna Flash",
	"Flora Flash",
	"Sky Flash",
	"Small Flash",
	"Discount Flash",
}

func allowedCategory(v string) bool {
	for _, c := range FlashCategories {
		if c == v {
			return true
		}
	}
	return false
}

// probeKeys returns the canonical identity followed by every alternate
// representation worth probing. The canonical form is where writes go, so it
// is always present and always first.
func probeKeys(rawURL string) []string {
	canon := Canonical(rawURL)
	keys := []string{canon}
	for _, v := range Variants(rawURL) {
		if v != canon {
			keys = append(keys, v)
		}
	}
	return keys
}

// getAttr probes the canonical identity first, then every known alternate
// representation; the first non-empty hit wins.
func (s *Service) getAttr(ctx context.Context, hashKey, rawURL string) (string, error) {
	for _, k := range probeKeys(rawURL) {
		val, err := s.store.HGet(ctx, hashKey, k)
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
	}
	return "", nil
}

// setAttr writes under the canonical identity only.
func (s *Service) setAttr(ctx context.Context, hashKey, rawURL, value string) error {
	return s.store.HSet(ctx, hashKey, map[string]string{Canonical(rawURL): value})
}

// clearAttr removes the entry under the canonical identity and all alternate
// representations, so encoding drift cannot orphan stale values.
func (s *Service) clearAttr(ctx context.Context, hashKey, rawURL string) error {
	return s.store.HDel(ctx, hashKey, probeKeys(rawURL)...)
}

func (s *Service) Caption(ctx context.Context, rawURL string) (string, error) {
	return s.getAttr(ctx, keyCaptions, rawURL)
}

func (s *Service) SetCaption(ctx context.Context, rawURL, caption string) error {
	if caption == "" {
		return s.clearAttr(ctx, keyCaptions, rawURL)
	}
	return s.setAttr(ctx, keyCaptions, rawURL, caption)
}

func (s *Service) Category(ctx context.Context, rawURL string) (string, error) {
	return s.getAttr(ctx, keyCategories, rawURL)
}

// SetCategory stores a category from the allow-list. Out-of-list values are
// dropped without error; empty clears.
func (s *Service) SetCategory(ctx context.Context, rawURL, category string) error {
	if category == "" {
		return s.clearAttr(ctx, keyCategories, rawURL)
	}
	if !allowedCategory(category) {
		return nil
	}
	return s.setAttr(ctx, keyCategories, rawURL, category)
}

func (s *Service) Schedule(ctx context.Context, rawURL string) (string, error) {
	return s.getAttr(ctx, keySchedules, rawURL)
}

// SetSchedule stores the visibility timestamp. An empty string clears the
// schedule entirely, which is distinct from scheduling at the epoch.
func (s *Service) SetSchedule(ctx context.Context, rawURL, schedule string) error {
	if schedule == "" {
		return s.clearAttr(ctx, keySchedules, rawURL)
	}
	return s.setAttr(ctx, keySchedules, rawURL, schedule)
}

func (s *Service) Hidden(ctx context.Context, rawURL string) (bool, error) {
	v, err := s.getAttr(ctx, keyHidden, rawURL)
	return v == "true", err
}

func (s *Service) SetHidden(ctx context.Context, rawURL string, hidden bool) error {
	if !hidden {
		return s.clearAttr(ctx, keyHidden, rawURL)
	}
	return s.setAttr(ctx, keyHidden, rawURL, "true")
}

func (s *Service) Claimed(ctx context.Context, rawURL string) (bool, error) {
	v, err := s.getAttr(ctx, keyClaimed, rawURL)
	return v == "true", err
}

// SetClaimed toggles the availability flag. Note the asymmetry: clearing the
// flag does not restore the overlaid asset bytes or the caption.
func (s *Service) SetClaimed(ctx context.Context, rawURL string, claimed bool) error {
	if !claimed {
		return s.clearAttr(ctx, keyClaimed, rawURL)
	}
	return s.setAttr(ctx, keyClaimed, rawURL, "true")
}

func (s *Service) Revision(ctx context.Context, rawURL string) (string, error) {
	return s.getAttr(ctx, keyRevisions, rawURL)
}

// SetRevision records a fresh cache-busting token under the canonical
// identity and every variant, so stale keys written by older paths also
// resolve to the new revision.
func (s *Service) SetRevision(ctx context.Context, rawURL, rev string) error {
	fields := make(map[string]string)
	for _, k := range probeKeys(rawURL) {
		fields[k] = rev
	}
	return s.store.HSet(ctx, keyRevisions, fields)
}

// ClearAttributes removes every attribute entry for the identity across all
// maps. Used when an image is deleted outright.
func (s *Service) ClearAttributes(ctx context.Context, rawURL string) error {
	for _, key := range []string{keyCaptions, keyCategories, keySchedules, keyHidden, keyClaimed, keyRevisions} {
		if err := s.clearAttr(ctx, key, rawURL); err != nil {
			return err
		}
	}
	return nil
}

// MintRevision returns a cache-busting token in the millisecond-timestamp
// form existing revs use.
func MintRevision(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
