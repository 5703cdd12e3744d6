package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jusunglee/mds-go/api/handlers"
	"github.com/jusunglee/mds-go/pkg/mds"
)

func main() {
	var (
		port     = flag.String("port", "8080", "Server port")
		baseURL  = flag.String("base-url", "", "MDS provider base URL")
		token    = flag.String("token", "", "MDS provider API token")
		timeout  = flag.Duration("timeout", mds.DefaultTimeout, "Per-request timeout")
		maxPages = flag.Int("max-pages", mds.DefaultMaxPages, "Maximum pages per query")
	)
	flag.Parse()

	// Check environment if flags not provided
	if *baseURL == "" {
		*baseURL = os.Getenv("MDS_BASE_URL")
	}
	if *baseURL == "" {
		log.Fatal("MDS provider base URL required (use -base-url flag or MDS_BASE_URL env var)")
	}
	if *token == "" {
		*token = os.Getenv("MDS_TOKEN")
	}

	// Create provider client
	config := mds.Config{
		BaseURL:  *baseURL,
		Token:    *token,
		Timeout:  *timeout,
		MaxPages: *maxPages,
	}

	client, err := mds.New(config)
	if err != nil {
		log.Fatalf("Failed to create MDS client: %v", err)
	}

	// Create HTTP server
	r := mux.NewRouter()
	h := handlers.NewHandler(client)
	h.RegisterRoutes(r)

	// Add middleware
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware)

	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s (provider %s)", *port, *baseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
