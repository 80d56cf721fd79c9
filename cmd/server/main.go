package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clark-Hu/typed-exercises/internal/boxoffice"
	"github.com/Clark-Hu/typed-exercises/internal/config"
	httpserver "github.com/Clark-Hu/typed-exercises/internal/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[exercises-api] ", log.LstdFlags|log.Lshortfile)

	var boxClient boxoffice.Client
	if cfg.BoxOfficeEnabled() {
		client, err := boxoffice.NewHTTPClient(cfg.BoxOfficeURL, cfg.BoxOfficeAPIKey, time.Duration(cfg.BoxOfficeTimeoutSecs)*time.Second, logger)
		if err != nil {
			log.Fatalf("init box office client: %v", err)
		}
		boxClient = client
	} else {
		logger.Println("BOXOFFICE_URL not set, title lookups disabled")
	}

	server := httpserver.New(cfg, boxClient, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}
