// Package catalog maintains the ordered, attributed image collections that
// back the storefront: membership lists, sparse per-image attributes,
// visibility scheduling, and the one-way claim transition.
package catalog

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"studio-site/internal/kv"
)

type Collection string

const (
	CollectionFlash   Collection = "flash"
	CollectionGallery Collection = "gallery"
	CollectionAbout   Collection = "about"
)

func (c Collection) Valid() bool {
	switch c {
	case CollectionFlash, CollectionGallery, CollectionAbout:
		return true
	}
	return false
}

func (c Collection) listKey() string {
	return string(c) + "-images"
}

// ErrNotFound is returned when an operation references an image that is not
// a member of the collection.
var ErrNotFound = errors.New("image not found in collection")

// Item is the assembled view of one catalog image. Attributes are stored in
// independent sparse maps; an id with no entries behaves as all-defaults.
type Item struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
	Schedule string `json:"schedule,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
	Claimed  bool   `json:"claimed,omitempty"`
	Rev      string `json:"rev,omitempty"`
	Visible  bool   `json:"visible"`
}

// Service owns all collection state in the key-value store. Mutations on a
// collection are serialized through a per-collection mutex; the external
// store itself offers no transactions.
type Service struct {
	store kv.Store
	zone  *time.Location

	// Now and Rand are injection points for tests. Now drives visibility
	// resolution; Rand drives Shuffle.
	Now  func() time.Time
	Rand *rand.Rand

	mu    sync.Mutex
	locks map[Collection]*sync.Mutex
}

func NewService(store kv.Store, zone *time.Location) *Service {
	return &Service{
		store: store,
		zone:  zone,
		Now:   time.Now,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		locks: make(map[Collection]*sync.Mutex),
	}
}

func (s *Service) lock(c Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[c]
	if !ok {
		l = &sync.Mutex{}
		s.locks[c] = l
	}
	return l
}

// Items returns the collection in stored order with all attributes resolved
// and visibility computed for the current injected time. Attribute read
// failures degrade to unset values rather than failing the whole read.
func (s *Service) Items(ctx context.Context, c Collection) ([]Item, error) {
	urls, err := s.Images(ctx, c)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(urls))
	for _, u := range urls {
		it := Item{URL: u}
		it.Caption, _ = s.Caption(ctx, u)
		if c == CollectionFlash {
			it.Category, _ = s.Category(ctx, u)
			it.Schedule, _ = s.Schedule(ctx, u)
			it.Hidden, _ = s.Hidden(ctx, u)
			it.Claimed, _ = s.Claimed(ctx, u)
			it.Rev, _ = s.Revision(ctx, u)
		}
		it.Visible = Visible(it.Hidden, it.Schedule, s.Now(), s.zone)
		items = append(items, it)
	}
	return items, nil
}

// VisibleItems filters Items down to what public viewers may see.
func (s *Service) VisibleItems(ctx context.Context, c Collection) ([]Item, error) {
	items, err := s.Items(ctx, c)
	if err != nil {
		return nil, err
	}
	visible := items[:0]
	for _, it := range items {
		if it.Visible {
			visible = append(visible, it)
		}
	}
	return visible, nil
}

// Contains reports whether the collection holds the given image identity.
func (s *Service) Contains(ctx context.Context, c Collection, rawURL string) (bool, error) {
	urls, err := s.Images(ctx, c)
	if err != nil {
		return false, err
	}
	canon := Canonical(rawURL)
	for _, u := range urls {
		if Canonical(u) == canon {
			return true, nil
		}
	}
	return false, nil
}
