package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sonascale/go-content/internal/client"
	"github.com/sonascale/go-content/internal/logging"
	"github.com/sonascale/go-content/internal/logging/gologger"
	"github.com/sonascale/go-content/internal/routes"
	"github.com/sonascale/go-content/internal/runtimeconfig"
	"github.com/sonascale/go-content/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "scale-content:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := runtimeconfig.Load()
	if err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	log := logging.ModuleLogger(provider, "")

	fetcher := client.NewHTTPFetcher(
		apiBase(cfg.CMSBaseURL),
		client.WithToken(cfg.CMSToken),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logging.ClientLogger(provider)),
	)
	cached := client.NewCachedFetcher(fetcher, client.CacheConfig{
		Capacity: cfg.CacheCapacity,
		TTL:      cfg.CacheTTL,
	})

	cms := client.New(cached,
		client.WithNormalizers(cfg.BlogNormalizer(), cfg.EventNormalizer(), cfg.CaseStudyNormalizer()),
		client.WithClientLogger(logging.ContentLogger(provider)),
	)

	resolver, err := routes.NewResolver(cfg.FrontendBaseURL)
	if err != nil {
		return err
	}

	srv := server.New(cms, resolver,
		server.WithLogger(logging.ServerLogger(provider)),
		server.WithInstitutionLogger(logging.InstitutionLogger(provider)),
		server.WithMediaBaseURL(cfg.CMSBaseURL),
	)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Engine(cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ListenAddr, "cms", cfg.CMSBaseURL)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	log.Info("stopped")
	return nil
}

// apiBase appends the REST prefix unless the configured URL already carries it.
func apiBase(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if strings.HasSuffix(base, "/api") {
		return base
	}
	return base + "/api"
}
