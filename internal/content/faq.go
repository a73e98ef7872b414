// Package content manages the editable page content outside the image
// catalogs: FAQ entries, the booking page, and the about page. Each lives as
// one JSON blob in the key-value store and is seeded with defaults the first
// time it is read.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio-site/internal/kv"
)

var ErrNotFound = errors.New("content item not found")

const faqKey = "faq-items"

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

type FAQStore struct {
	store kv.Store
}

func NewFAQStore(store kv.Store) *FAQStore {
	return &FAQStore{store: store}
}

// Items returns all FAQ entries, seeding the defaults on first read.
func (f *FAQStore) Items(ctx context.Context) ([]FAQItem, error) {
	raw, err := f.store.Get(ctx, faqKey)
	if err != nil {
		return nil, err
	}
	var items []FAQItem
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("failed to decode faq items: %w", err)
		}
	}
	if len(items) == 0 {
		items = defaultFAQItems()
		if err := f.save(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Add appends a new entry after the current highest order.
func (f *FAQStore) Add(ctx context.Context, question, answer string) (FAQItem, error) {
	items, err := f.Items(ctx)
	if err != nil {
		return FAQItem{}, err
	}
	next := 0
	for _, it := range items {
		if it.Order >= next {
			next = it.Order + 1
		}
	}
	item := FAQItem{
		ID:       fmt.Sprintf("faq-%d-%s", time.Now().UnixMilli(), shortID()),
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
		Order:    next,
	}
	return item, f.save(ctx, append(items, item))
}

// Update rewrites the question and answer of an existing entry.
func (f *FAQStore) Update(ctx context.Context, id, question, answer string) (FAQItem, error) {
	items, err := f.Items(ctx)
	if err != nil {
		return FAQItem{}, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Question = strings.TrimSpace(question)
			items[i].Answer = strings.TrimSpace(answer)
			return items[i], f.save(ctx, items)
		}
	}
	return FAQItem{}, ErrNotFound
}

func (f *FAQStore) Delete(ctx context.Context, id string) error {
	items, err := f.Items(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrNotFound
	}
	return f.save(ctx, kept)
}

// Reorder installs the posted sequence, renumbering orders by position.
func (f *FAQStore) Reorder(ctx context.Context, items []FAQItem) error {
	for i := range items {
		items[i].Order = i
	}
	return f.save(ctx, items)
}

func (f *FAQStore) save(ctx context.Context, items []FAQItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode faq items: %w", err)
	}
	return f.store.Set(ctx, faqKey, string(data))
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

func defaultFAQItems() []FAQItem {
	return []FAQItem{
		{
			ID:       "custom-requests",
			Question: "Do you take custom requests?",
			Answer:   "Yes, within a limited range of styles. Please look through the gallery first to make sure the studio's style suits what you have in mind, then email us with references, sizing, and placement ideas.",
			Order:    0,
		},
		{
			ID:       "touch-ups",
			Question: "How do you handle touch-ups?",
			Answer:   "Touch-ups are free of charge. Email us with a photo of the piece and a few dates that work for you, and we'll set something up.",
			Order:    1,
		},
		{
			ID:       "location",
			Question: "Where is the studio?",
			Answer:   "The studio address and arrival instructions are sent with your booking confirmation. Street parking and public transit are both close by.",
			Order:    2,
		},
	}
}
