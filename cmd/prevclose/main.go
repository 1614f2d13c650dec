package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prevclose/internal/config"
	"prevclose/internal/httpx"
	"prevclose/internal/lookup"
	"prevclose/internal/polygon"
)

func main() {
	// Config: .env (or ENV_FILE) layered under the process environment
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)
	httpClient.UserAgent = cfg.UserAgent

	client := polygon.NewClient(cfg.APIKey,
		polygon.WithBaseURL(cfg.BaseURL),
		polygon.WithHTTPClient(httpClient),
		polygon.WithHeader(http.Header{
			"Accept": []string{"application/json"},
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling once the first signal arrives.
	context.AfterFunc(ctx, stop)

	session := lookup.New(lookup.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		MaxAttempts: cfg.MaxAttempts,
		Logger:      log.Default(),
	}, client)

	if err := session.Run(ctx); err != nil {
		stop()
		log.Fatalf("prevclose: %v", err)
	}
}
