package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-site/internal/kv"
)

func TestFAQSeedsDefaultsOnFirstRead(t *testing.T) {
	store := kv.NewMemory()
	faq := NewFAQStore(store)
	ctx := context.Background()

	items, err := faq.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "custom-requests", items[0].ID)

	// Seed is persisted, not recomputed on every read.
	raw, err := store.Get(ctx, "faq-items")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestFAQAddAssignsNextOrder(t *testing.T) {
	faq := NewFAQStore(kv.NewMemory())
	ctx := context.Background()

	item, err := faq.Add(ctx, "  Do you tattoo hands?  ", "Not for a first session.")
	require.NoError(t, err)
	assert.Equal(t, "Do you tattoo hands?", item.Question, "whitespace trimmed")
	assert.Equal(t, 3, item.Order, "appended after the three seeded entries")
	assert.NotEmpty(t, item.ID)

	items, err := faq.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestFAQUpdate(t *testing.T) {
	faq := NewFAQStore(kv.NewMemory())
	ctx := context.Background()

	updated, err := faq.Update(ctx, "touch-ups", "Touch-up policy?", "Free within a year.")
	require.NoError(t, err)
	assert.Equal(t, "Touch-up policy?", updated.Question)

	_, err = faq.Update(ctx, "no-such-id", "q", "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQDelete(t *testing.T) {
	faq := NewFAQStore(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, faq.Delete(ctx, "location"))
	items, err := faq.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.ErrorIs(t, faq.Delete(ctx, "location"), ErrNotFound)
}

func TestFAQReorderRenumbers(t *testing.T) {
	faq := NewFAQStore(kv.NewMemory())
	ctx := context.Background()

	items, err := faq.Items(ctx)
	require.NoError(t, err)

	reversed := []FAQItem{items[2], items[0], items[1]}
	require.NoError(t, faq.Reorder(ctx, reversed))

	after, err := faq.Items(ctx)
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, "location", after[0].ID)
	for i, it := range after {
		assert.Equal(t, i, it.Order)
	}
}

func TestBookingSeedsAndPut(t *testing.T) {
	booking := NewBookingStore(kv.NewMemory())
	ctx := context.Background()

	page, err := booking.Get(ctx)
	require.NoError(t, err)
	require.Len(t, page.Sections, 3)
	assert.NotEmpty(t, page.IntroText)

	put, err := booking.Put(ctx, " New intro ", []BookingSection{
		{ID: "a", Title: " One ", Content: "first", Order: 9},
		{ID: "b", Title: "Two", Content: "second", Order: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "New intro", put.IntroText)
	require.Len(t, put.Sections, 2)
	assert.Equal(t, 0, put.Sections[0].Order, "orders renumbered by position")
	assert.Equal(t, 1, put.Sections[1].Order)
	assert.Equal(t, "One", put.Sections[0].Title)
}

func TestBookingAddAndDeleteSection(t *testing.T) {
	booking := NewBookingStore(kv.NewMemory())
	ctx := context.Background()

	section, err := booking.AddSection(ctx, "Aftercare", "Keep it clean and moisturized.")
	require.NoError(t, err)
	assert.Equal(t, 3, section.Order)

	require.NoError(t, booking.DeleteSection(ctx, "lateness"))
	page, err := booking.Get(ctx)
	require.NoError(t, err)
	require.Len(t, page.Sections, 3)
	for i, s := range page.Sections {
		assert.Equal(t, i, s.Order, "orders close the gap after a delete")
	}

	assert.ErrorIs(t, booking.DeleteSection(ctx, "lateness"), ErrNotFound)
}

func TestBookingReorderKeepsIntro(t *testing.T) {
	booking := NewBookingStore(kv.NewMemory())
	ctx := context.Background()

	page, err := booking.Get(ctx)
	require.NoError(t, err)
	intro := page.IntroText

	reversed := []BookingSection{page.Sections[2], page.Sections[1], page.Sections[0]}
	require.NoError(t, booking.Reorder(ctx, reversed))

	after, err := booking.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, intro, after.IntroText)
	assert.Equal(t, "preparation", after.Sections[0].ID)
}

func TestAboutSeedsAndPut(t *testing.T) {
	about := NewAboutStore(kv.NewMemory())
	ctx := context.Background()

	page, err := about.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "About", page.Title)

	_, err = about.Put(ctx, " Our Studio ", " A short history. ")
	require.NoError(t, err)

	after, err := about.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Our Studio", after.Title)
	assert.Equal(t, "A short history.", after.Content)
}
