package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all routes. Reads used by the public pages are open;
// every mutation sits behind the shared basic-auth credential.
func NewRouter(h *Handler, adminUser, adminPassword string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rl := NewRateLimiter(600, time.Minute)
	router.Use(rl.Middleware())

	// Public reads
	router.GET("/api/images/:collection", h.GetImages)
	router.GET("/api/faq", h.GetFAQ)
	router.GET("/api/booking", h.GetBooking)
	router.GET("/api/about", h.GetAbout)
	router.POST("/api/subscribe", h.Subscribe)

	// Admin mutations
	admin := router.Group("/", BasicAuth(adminUser, adminPassword))
	admin.POST("/api/images/replace", h.ReplaceImage)
	admin.POST("/api/images/:collection", h.UploadImage)
	admin.PUT("/api/images/:collection", h.UpdateImage)
	admin.PATCH("/api/images/:collection", h.PatchImages)
	admin.DELETE("/api/images/:collection", h.DeleteImage)
	admin.POST("/api/images/:collection/claim", h.ClaimImage)
	admin.DELETE("/api/images/:collection/claim", h.UnclaimImage)

	admin.POST("/api/faq", h.CreateFAQ)
	admin.PUT("/api/faq", h.UpdateFAQ)
	admin.PATCH("/api/faq", h.ReorderFAQ)
	admin.DELETE("/api/faq", h.DeleteFAQ)

	admin.POST("/api/booking", h.AddBookingSection)
	admin.PUT("/api/booking", h.PutBooking)
	admin.PATCH("/api/booking", h.ReorderBooking)
	admin.DELETE("/api/booking", h.DeleteBookingSection)

	admin.PUT("/api/about", h.PutAbout)

	return router
}
