package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studio-site/internal/kv"
)

const aboutKey = "about-page"

type AboutPage struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AboutStore struct {
	store kv.Store
}

func NewAboutStore(store kv.Store) *AboutStore {
	return &AboutStore{store: store}
}

// Get returns the about page, seeding the default on first read.
func (a *AboutStore) Get(ctx context.Context) (AboutPage, error) {
	raw, err := a.store.Get(ctx, aboutKey)
	if err != nil {
		return AboutPage{}, err
	}
	if raw == "" {
		page := AboutPage{
			Title:   "About",
			Content: "Welcome to the studio. Every piece is made by hand with care; have a look through the gallery and get in touch if something speaks to you.",
		}
		return page, a.save(ctx, page)
	}
	var page AboutPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return AboutPage{}, fmt.Errorf("failed to decode about page: %w", err)
	}
	return page, nil
}

func (a *AboutStore) Put(ctx context.Context, title, content string) (AboutPage, error) {
	page := AboutPage{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	return page, a.save(ctx, page)
}

func (a *AboutStore) save(ctx context.Context, page AboutPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to encode about page: %w", err)
	}
	return a.store.Set(ctx, aboutKey, string(data))
}
