package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acutia-backend/internal/config"
	"acutia-backend/internal/handlers"
	"acutia-backend/internal/repository"
	"acutia-backend/internal/services"
	"acutia-backend/internal/storage"
	"acutia-backend/internal/store"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Open the persistence medium
	backend, err := openBackend(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage backend")
	}
	prefix := cfg.Storage.Prefix
	if prefix == "" {
		prefix = storage.DefaultPrefix
	}
	kv := storage.New(backend, prefix)
	defer kv.Close()
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Storage opened")

	// Initialize repositories
	userRepo := repository.NewUserRepository(kv)
	cartRepo := repository.NewCartRepository(kv)
	favoritesRepo := repository.NewFavoritesRepository(kv)
	catalogRepo := repository.NewCatalogRepository(kv)
	orderRepo := repository.NewOrderRepository(kv)
	matchRepo := repository.NewMatchRepository(kv)

	// Initialize services
	sessionService := services.NewSessionService(userRepo)
	cartService := services.NewCartService(cartRepo)
	favoritesService := services.NewFavoritesService(favoritesRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo)
	matchService := services.NewMatchService(catalogService, matchRepo)

	// Initialize the reactive store and its change feed
	st := store.New(sessionService, cartService, favoritesService, catalogService, orderService, matchService)
	hub := services.NewHub()
	st.Subscribe(hub.Broadcast)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(st)
	cartHandler := handlers.NewCartHandler(st)
	favoritesHandler := handlers.NewFavoritesHandler(st)
	catalogHandler := handlers.NewCatalogHandler(st)
	orderHandler := handlers.NewOrderHandler(st)
	matchHandler := handlers.NewMatchHandler(st)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/session", sessionHandler.GetSession)
		r.Post("/session", sessionHandler.Login)
		r.Delete("/session", sessionHandler.Logout)

		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart", cartHandler.AddToCart)
		r.Delete("/cart", cartHandler.ClearCart)
		r.Delete("/cart/{photo_id}", cartHandler.RemoveFromCart)

		r.Get("/favorites", favoritesHandler.GetFavorites)
		r.Post("/favorites/{photo_id}/toggle", favoritesHandler.ToggleFavorite)

		r.Get("/events", catalogHandler.GetEvents)
		r.Post("/events", catalogHandler.CreateEvent)
		r.Put("/events", catalogHandler.ReplaceEvents)
		r.Get("/photographers", catalogHandler.GetPhotographers)
		r.Put("/photographers", catalogHandler.ReplacePhotographers)
		r.Post("/photographers/{id}/toggle", catalogHandler.TogglePhotographerStatus)

		r.Get("/orders", orderHandler.GetOrders)
		r.Get("/orders/{id}", orderHandler.GetOrder)
		r.Post("/checkout", orderHandler.Checkout)

		r.Get("/matches", matchHandler.GetMatches)
		r.Post("/matches/search", matchHandler.Search)
	})

	// WebSocket change feed
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openBackend creates the storage backend selected by cfg.
func openBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "acutia.db"
		}
		return storage.NewSQLiteBackend(path)
	case "memory":
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
