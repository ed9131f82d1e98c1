package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/enviromat/enviromat/internal/config"
	"github.com/enviromat/enviromat/internal/events"
	"github.com/enviromat/enviromat/internal/media"
	"github.com/enviromat/enviromat/internal/notify"
	"github.com/enviromat/enviromat/internal/repository/pg"
	"github.com/enviromat/enviromat/internal/selector"
	"github.com/enviromat/enviromat/internal/service"
	"github.com/enviromat/enviromat/pgk/logger"

	httpController "github.com/enviromat/enviromat/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	uploader, err := media.NewS3Uploader(context.Background(), cfg.MediaBucket, cfg.MediaRegion, cfg.MediaBaseURL)
	if err != nil {
		return err
	}

	sel := selector.NewClient(cfg.InferenceAddress, cfg.InferenceTimeout)

	var sms service.SMSSender
	if cfg.SMSAddress != "" {
		sms = notify.NewGatewayClient(cfg.SMSAddress, cfg.SMSFrom)
	}

	var pub events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQPURL, lg)
		if err != nil {
			return err
		}
		pub = amqpPub
	}

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	s := service.New(storage, sel, sms, pub, uploader, lg,
		cfg.PassCost, cfg.TokenLifetime, cfg.SecretKey)

	handlers := httpController.New(s, storage, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := pub.Close(); err != nil {
		lg.Errorf("shutdown (events) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
