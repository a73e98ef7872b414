package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-site/internal/content"
)

// ───────────────────────── FAQ

func (h *Handler) GetFAQ(c *gin.Context) {
	items, err := h.faq.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQ data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type faqRequest struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *Handler) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
		return
	}
	item, err := h.faq.Add(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "message": "FAQ item created successfully"})
}

func (h *Handler) UpdateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Question == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID, question, and answer are required"})
		return
	}
	item, err := h.faq.Update(c.Request.Context(), req.ID, req.Question, req.Answer)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FAQ item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "message": "FAQ item updated successfully"})
}

func (h *Handler) DeleteFAQ(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}
	err := h.faq.Delete(c.Request.Context(), id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ item deleted successfully"})
}

type faqReorderRequest struct {
	Items []content.FAQItem `json:"items"`
}

func (h *Handler) ReorderFAQ(c *gin.Context) {
	var req faqReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Items array is required"})
		return
	}
	if err := h.faq.Reorder(c.Request.Context(), req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FAQ order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ order updated successfully"})
}

// ───────────────────────── Booking page

func (h *Handler) GetBooking(c *gin.Context) {
	page, err := h.booking.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking data"})
		return
	}
	c.JSON(http.StatusOK, page)
}

type bookingPutRequest struct {
	IntroText *string                  `json:"introText"`
	Sections  []content.BookingSection `json:"sections"`
}

func (h *Handler) PutBooking(c *gin.Context) {
	var req bookingPutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IntroText == nil || req.Sections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Intro text and sections are required"})
		return
	}
	page, err := h.booking.Put(c.Request.Context(), *req.IntroText, req.Sections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking page updated successfully", "data": page})
}

type bookingSectionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) AddBookingSection(c *gin.Context) {
	var req bookingSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	section, err := h.booking.AddSection(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section added successfully", "section": section})
}

func (h *Handler) DeleteBookingSection(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Section ID is required"})
		return
	}
	err := h.booking.DeleteSection(c.Request.Context(), id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

type bookingReorderRequest struct {
	Sections []content.BookingSection `json:"sections"`
}

func (h *Handler) ReorderBooking(c *gin.Context) {
	var req bookingReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Sections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sections array is required"})
		return
	}
	if err := h.booking.Reorder(c.Request.Context(), req.Sections); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking order updated successfully"})
}

// ───────────────────────── About page

func (h *Handler) GetAbout(c *gin.Context) {
	page, err := h.about.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about data"})
		return
	}
	c.JSON(http.StatusOK, page)
}

type aboutPutRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) PutAbout(c *gin.Context) {
	var req aboutPutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil || req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	page, err := h.about.Put(c.Request.Context(), *req.Title, *req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "About page updated successfully", "data": page})
}
