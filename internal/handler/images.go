package handler

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio-site/internal/catalog"
)

const MaxUploadSize = 25 << 20 // 25MB

func parseCollection(c *gin.Context) (catalog.Collection, bool) {
	col := catalog.Collection(c.Param("collection"))
	if !col.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection"})
		return "", false
	}
	return col, true
}

// GetImages returns the collection's items in stored order. With
// ?visible=true only items public viewers may see are returned.
func (h *Handler) GetImages(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var items []catalog.Item
	var err error
	if c.Query("visible") == "true" {
		items, err = h.catalog.VisibleItems(ctx, col)
	} else {
		items, err = h.catalog.Items(ctx, col)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images"})
		return
	}
	if items == nil {
		items = []catalog.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UploadImage stores a new image and adds it to the collection. The object
// name gets a unique suffix so re-uploading the same filename never collides.
func (h *Handler) UploadImage(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename required"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file to upload"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentType(ext)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only jpg, jpeg, png, gif and webp files are allowed"})
		return
	}

	objectName := fmt.Sprintf("%s/%s", col, uniqueFilename(filename))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	url, err := h.objects.Upload(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to upload file: %v", err)})
		return
	}

	if err := h.catalog.AddImage(ctx, col, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record image"})
		return
	}

	if caption := c.Query("caption"); caption != "" {
		_ = h.catalog.SetCaption(ctx, url, caption)
	}
	if category := c.Query("category"); col == catalog.CollectionFlash && category != "" {
		_ = h.catalog.SetCategory(ctx, url, category)
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        url,
		"pathname":   objectName,
		"size":       header.Size,
		"uploadedAt": time.Now().UTC(),
	})
}

// UpdateImage sets attributes on an existing image. Each attribute is only
// touched when its query parameter is present, so partial updates work.
func (h *Handler) UpdateImage(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	member, err := h.catalog.Contains(ctx, col, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up image"})
		return
	}
	if !member {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	params := c.Request.URL.Query()
	if params.Has("caption") {
		if err := h.catalog.SetCaption(ctx, url, params.Get("caption")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save caption"})
			return
		}
	}
	if col == catalog.CollectionFlash {
		if params.Has("category") {
			if err := h.catalog.SetCategory(ctx, url, params.Get("category")); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save category"})
				return
			}
		}
		if params.Has("schedule") {
			if err := h.catalog.SetSchedule(ctx, url, params.Get("schedule")); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
				return
			}
		}
		if params.Has("hidden") {
			if err := h.catalog.SetHidden(ctx, url, params.Get("hidden") == "true"); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save hidden flag"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type patchRequest struct {
	URLs   []string `json:"urls"`
	Action string   `json:"action"`
}

// PatchImages reorders the collection or shuffles it once. A reorder installs
// exactly the posted sequence: identifiers left out are dropped, which is how
// operators prune.
func (h *Handler) PatchImages(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if req.Action == "shuffle" {
		if err := h.catalog.Shuffle(ctx, col); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to shuffle"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Shuffled once"})
		return
	}

	if req.URLs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urls array required"})
		return
	}
	if err := h.catalog.Reorder(ctx, col, req.URLs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Order updated successfully"})
}

// DeleteImage removes the image from the collection, clears its attributes,
// and best-effort deletes the backing asset.
func (h *Handler) DeleteImage(c *gin.Context) {
	col, ok := parseCollection(c)
	if !ok {
		return
	}

	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No url to delete"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := h.claimer.DeleteImage(ctx, col, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

func imageContentType(ext string) (string, bool) {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	case ".gif":
		return "image/gif", true
	case ".webp":
		return "image/webp", true
	}
	return "", false
}

// uniqueFilename appends a timestamp and a short random id to the base name.
func uniqueFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), short, ext)
}
