package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AlecUrbany/CS-4800/internal/config"
	"github.com/AlecUrbany/CS-4800/internal/handler"
	"github.com/AlecUrbany/CS-4800/pkg/llm"
	"github.com/AlecUrbany/CS-4800/pkg/secrets"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Environment values win over the secrets file.
	secretStore := secrets.Chain{
		secrets.NewEnvProvider(),
		secrets.NewFileProvider(cfg.SecretsFile),
	}

	genreClient, err := llm.NewGenreClient(llm.Config{Provider: cfg.Provider, BaseURL: cfg.BaseURL}, secretStore)
	if err != nil {
		log.Fatalf("error configuring completion client: %v", err)
	}

	genreHandler := handler.NewGenreHandler(genreClient)

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/genres", genreHandler.GetGenres)
	r.POST("/genres", genreHandler.PostGenres)
	r.GET("/health", genreHandler.GetHealth)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "provider", genreClient.Name())
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("error starting server: %v", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}
}
