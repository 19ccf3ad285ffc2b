// Main entry point of the kicau application. It loads configuration, connects
// to the database, runs migrations, wires the feature services and handlers
// together, sets up the HTTP router and middleware, and starts the server
// with graceful shutdown.
//
// @title Kicau API
// @version 1.0
// @description Minimal social-network backend: registration, login, profiles, follows, and tweets.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/kicau-go/apperror"
	"github.com/user/kicau-go/auth"
	"github.com/user/kicau-go/config"
	"github.com/user/kicau-go/db"
	_ "github.com/user/kicau-go/docs" // Generated Swagger docs
	"github.com/user/kicau-go/tweets"
	"github.com/user/kicau-go/users"
)

func main() {
	// .env is a development convenience; production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		// A missing JWT_SECRET lands here: fail loudly rather than sign
		// tokens with an empty key.
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire services and handlers. Dependencies are injected explicitly.
	tokenService := auth.NewTokenService(*cfg.Auth)

	authService := auth.NewAuthService(auth.NewUserStore(pool), tokenService)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(users.NewStore(pool))
	userHandlers := users.NewUserHandlers(userService)

	tweetService := tweets.NewTweetService(tweets.NewStore(pool))
	tweetHandlers := tweets.NewTweetHandlers(tweetService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered
	// before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that formats errors through the apperror system.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public auth routes
	r.Post("/register", authHandlers.HandleRegister())
	r.Post("/login", authHandlers.HandleLogin())

	// Protected user routes
	r.Route("/user", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(tokenService))

		r.Get("/", userHandlers.HandleGetProfile())
		r.Post("/follow/{user_id}", userHandlers.HandleFollow())
		r.Post("/unfollow/{user_id}", userHandlers.HandleUnfollow())
	})

	// Protected tweet routes
	r.Route("/tweet", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(tokenService))

		r.Post("/", tweetHandlers.HandleCreateTweet())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid an import cycle with the feature packages.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
