package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"endpointmedia.co.za/web/content"
	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/config"
	"endpointmedia.co.za/web/internal/indexnow"
	"endpointmedia.co.za/web/internal/leads"
	"endpointmedia.co.za/web/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")
	ctx = observability.WithLogger(ctx, logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("web server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Site.Dev {
		return observability.NewDevelopmentLogger()
	}
	return observability.NewLogger()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	catalog, err := cms.LoadCatalog(content.FS)
	if err != nil {
		return err
	}

	notifiers := leads.Multi{leads.LogNotifier{Logger: logger.Named("leads")}}
	if cfg.Leads.PubSubEnabled() {
		client, err := pubsub.NewClient(ctx, cfg.Leads.PubSubProjectID)
		if err != nil {
			return fmt.Errorf("pubsub client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("pubsub close error", zap.Error(err))
			}
		}()
		topic := client.Topic(cfg.Leads.PubSubTopic)
		defer topic.Stop()
		publisher, err := leads.NewPubSubNotifier(topic)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, publisher)
		logger.Info("publishing leads to pubsub", zap.String("topic", cfg.Leads.PubSubTopic))
	}
	leadService, err := leads.NewService(leads.ServiceDeps{Notifier: notifiers})
	if err != nil {
		return err
	}

	a, err := newApp(appDeps{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Content: cms.NewClient(cfg.CMS.BaseURL, content.FS, cms.WithCacheTTL(cfg.CMS.CacheTTL)),
		Leads:   leadService,
		IndexNow: indexnow.NewClient(indexnow.Options{
			Endpoint: cfg.IndexNow.Endpoint,
			Key:      cfg.IndexNow.Key,
			BaseURL:  cfg.Site.BaseURL,
			Host:     cfg.IndexNow.Host,
			Timeout:  cfg.IndexNow.Timeout,
		}),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newRouter(a),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("web listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.Site.Environment),
			zap.String("base_url", cfg.Site.BaseURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received; draining requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
