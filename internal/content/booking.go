package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"studio-site/internal/kv"
)

const bookingKey = "booking-page"

type BookingSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type BookingPage struct {
	IntroText string           `json:"introText"`
	Sections  []BookingSection `json:"sections"`
}

type BookingStore struct {
	store kv.Store
}

func NewBookingStore(store kv.Store) *BookingStore {
	return &BookingStore{store: store}
}

// Get returns the booking page, seeding the defaults on first read.
func (b *BookingStore) Get(ctx context.Context) (BookingPage, error) {
	raw, err := b.store.Get(ctx, bookingKey)
	if err != nil {
		return BookingPage{}, err
	}
	if raw == "" {
		page := defaultBookingPage()
		return page, b.save(ctx, page)
	}
	var page BookingPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return BookingPage{}, fmt.Errorf("failed to decode booking page: %w", err)
	}
	return page, nil
}

// Put replaces the whole page, renumbering section orders by position.
func (b *BookingStore) Put(ctx context.Context, introText string, sections []BookingSection) (BookingPage, error) {
	page := BookingPage{
		IntroText: strings.TrimSpace(introText),
		Sections:  make([]BookingSection, len(sections)),
	}
	for i, s := range sections {
		page.Sections[i] = BookingSection{
			ID:      s.ID,
			Title:   strings.TrimSpace(s.Title),
			Content: strings.TrimSpace(s.Content),
			Order:   i,
		}
	}
	return page, b.save(ctx, page)
}

// AddSection appends a new section at the end.
func (b *BookingStore) AddSection(ctx context.Context, title, content string) (BookingSection, error) {
	page, err := b.Get(ctx)
	if err != nil {
		return BookingSection{}, err
	}
	section := BookingSection{
		ID:      fmt.Sprintf("section-%d-%s", time.Now().UnixMilli(), shortID()),
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Order:   len(page.Sections),
	}
	page.Sections = append(page.Sections, section)
	return section, b.save(ctx, page)
}

func (b *BookingStore) DeleteSection(ctx context.Context, id string) error {
	page, err := b.Get(ctx)
	if err != nil {
		return err
	}
	kept := page.Sections[:0]
	for _, s := range page.Sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(page.Sections) {
		return ErrNotFound
	}
	for i := range kept {
		kept[i].Order = i
	}
	page.Sections = kept
	return b.save(ctx, page)
}

// Reorder installs the posted section sequence, keeping the intro text.
func (b *BookingStore) Reorder(ctx context.Context, sections []BookingSection) error {
	page, err := b.Get(ctx)
	if err != nil {
		return err
	}
	for i := range sections {
		sections[i].Order = i
	}
	page.Sections = sections
	return b.save(ctx, page)
}

func (b *BookingStore) save(ctx context.Context, page BookingPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to encode booking page: %w", err)
	}
	return b.store.Set(ctx, bookingKey, string(data))
}

func defaultBookingPage() BookingPage {
	return BookingPage{
		IntroText: "Please read each section fully before booking.",
		Sections: []BookingSection{
			{
				ID:      "important-notes",
				Title:   "Important Notes",
				Content: "New clients must be 18+ and bring a valid photo ID. A non-refundable deposit is required when booking and is applied to the final cost.",
				Order:   0,
			},
			{
				ID:      "lateness",
				Title:   "Lateness & Rescheduling",
				Content: "Aim to arrive 5-10 minutes early. Rescheduling with at least 48 hours notice carries the deposit over; later than that counts as a cancellation.",
				Order:   1,
			},
			{
				ID:      "preparation",
				Title:   "Preparing for Your Appointment",
				Content: "Eat and hydrate beforehand, and wear comfortable clothing you don't mind getting inky. Most sessions run one to three hours.",
				Order:   2,
			},
		},
	}
}
