package handler

import (
	"studio-site/internal/catalog"
	"studio-site/internal/cdn"
	"studio-site/internal/content"
	"studio-site/internal/mailer"
)

type Handler struct {
	catalog *catalog.Service
	claimer *catalog.Claimer
	objects cdn.ObjectStore
	faq     *content.FAQStore
	booking *content.BookingStore
	about   *content.AboutStore
	mail    *mailer.Mailer
}

func NewHandler(
	cat *catalog.Service,
	claimer *catalog.Claimer,
	objects cdn.ObjectStore,
	faq *content.FAQStore,
	booking *content.BookingStore,
	about *content.AboutStore,
	mail *mailer.Mailer,
) *Handler {
	return &Handler{
		catalog: cat,
		claimer: claimer,
		objects: objects,
		faq:     faq,
		booking: booking,
		about:   about,
		mail:    mail,
	}
}
