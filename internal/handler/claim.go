package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-site/internal/catalog"
)

type claimRequest struct {
	URL string `json:"url" binding:"required"`
}

// ClaimImage marks a catalog image as no longer available, baking the
// overlay into the asset itself. The attribute flip happens only after the
// overwritten bytes are safely uploaded.
func (h *Handler) ClaimImage(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}

	rev, err := h.claimer.Claim(c.Request.Context(), col, req.URL)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     catalog.WithRev(catalog.Canonical(req.URL), rev),
		"rev":     rev,
		"message": "Image has been marked as claimed and updated",
	})
}

// UnclaimImage clears the availability flag. The baked overlay and the
// overwritten caption are not restored.
func (h *Handler) UnclaimImage(c *gin.Context) {
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}

	if err := h.claimer.Unclaim(c.Request.Context(), req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unclaim image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type replaceRequest struct {
	SourceURL string `json:"sourceUrl" binding:"required"`
	TargetURL string `json:"targetUrl" binding:"required"`
}

// ReplaceImage overwrites the bytes behind targetUrl with the bytes behind
// sourceUrl, keeping the public URL stable and bumping the revision.
func (h *Handler) ReplaceImage(c *gin.Context) {
	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceUrl and targetUrl required"})
		return
	}

	rev, err := h.claimer.Replace(c.Request.Context(), req.SourceURL, req.TargetURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sourceUrl": req.SourceURL,
		"targetUrl": req.TargetURL,
		"rev":       rev,
	})
}
