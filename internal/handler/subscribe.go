package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe records a newsletter signup by notifying the studio inbox.
func (h *Handler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
		return
	}

	if err := h.mail.NotifySignup(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
