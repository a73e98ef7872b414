package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"studio-site/internal/catalog"
	"studio-site/internal/cdn"
	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/internal/handler"
	"studio-site/internal/kv"
	"studio-site/internal/mailer"
	"studio-site/internal/overlay"
)

func main() {
	log.Println("Starting studio site server...")

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zone, err := time.LoadLocation(cfg.DisplayTimeZone)
	if err != nil {
		log.Fatalf("Failed to load display timezone %s: %v", cfg.DisplayTimeZone, err)
	}

	log.Println("Connecting to Redis...")
	store, err := kv.NewRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	log.Println("Connecting to Minio...")
	objects, err := cdn.NewMinio(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to Minio: %v", err)
	}

	log.Println("✓ Successfully connected to all services")

	catalogSvc := catalog.NewService(store, zone)
	claimer := catalog.NewClaimer(catalogSvc, objects, overlay.Apply, cfg.ClaimTimeout)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyFrom, cfg.NotifyTo)

	h := handler.NewHandler(
		catalogSvc,
		claimer,
		objects,
		content.NewFAQStore(store),
		content.NewBookingStore(store),
		content.NewAboutStore(store),
		mail,
	)

	router := handler.NewRouter(h, cfg.AdminUser, cfg.AdminPassword)

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
