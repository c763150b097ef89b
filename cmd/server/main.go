package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Zerr0-C00L/ListLink/internal/api"
	"github.com/Zerr0-C00L/ListLink/internal/config"
	"github.com/Zerr0-C00L/ListLink/internal/lists"
	"github.com/Zerr0-C00L/ListLink/internal/services"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
	"github.com/Zerr0-C00L/ListLink/internal/views"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.Println("Starting ListLink server...")

	cfg := config.Load()
	if cfg.TraktClientID == "" || cfg.TraktClientSecret == "" {
		log.Println("Warning: TRAKT_CLIENT_ID / TRAKT_CLIENT_SECRET not set, the Trakt OAuth flow will fail")
	}

	// Provider adapters. Credentials are per-request (they live in the
	// configuration token), so the clients themselves are stateless.
	traktClient := services.NewTraktClient(cfg.TraktClientID, cfg.TraktClientSecret)
	mdblistClient := services.NewMDBListClient()

	dispatcher := lists.NewDispatcher(map[string]lists.Provider{
		userconfig.SourceTrakt:   traktClient,
		userconfig.SourceMDBList: mdblistClient,
	})

	renderer, err := views.New()
	if err != nil {
		log.Fatalf("Failed to parse view templates: %v", err)
	}

	handler := api.NewHandler(cfg, traktClient, mdblistClient, dispatcher, renderer)
	router := api.SetupRoutes(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("ListLink server running on %s", cfg.BaseURL)
		log.Printf("Manifest URL: %s/manifest.json", cfg.BaseURL)
		log.Printf("Configuration URL: %s/configure", cfg.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
