package commands

import (
	"context"
	"fmt"

	"github.com/adityab94/FitForge/config"
	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/repository"
	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	svc    *services.Services
	hub    *services.RealtimeHub
	closer func(ctx context.Context) error
}

// buildApp opens the store, blob store and mailer named by cfg and wires the
// services over them. The caller owns app.closer.
func buildApp(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*app, error) {
	if cfg.Auth.JWTSecret != "" {
		helpers.SetJWTKey(cfg.Auth.JWTSecret)
	} else {
		logger.Warn("auth.jwt_secret not set, tokens are signed with a per-process key")
		helpers.SetJWTKey(config.GenerateRandomKey())
	}

	a := &app{cfg: cfg, log: logger, closer: func(context.Context) error { return nil }}

	var store *repository.Store
	var blobs repository.BlobStore
	switch cfg.Store.Driver {
	case config.DriverMongo:
		db, err := config.ConnectDB(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		a.closer = db.Close
		store, err = repository.NewMongoStore(ctx, db.DB(), cfg.Mongo.Timeout)
		if err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		if cfg.Blob.Driver == config.DriverGridFS {
			blobs = repository.NewGridFSBlobs(db.DB())
		}
	default:
		logger.Warn("using the in-memory store, data is lost on exit")
		store = repository.NewMemoryStore()
	}

	switch cfg.Blob.Driver {
	case config.DriverS3:
		s3Blobs, err := repository.NewS3Blobs(ctx, cfg.Blob.S3Region, cfg.Blob.S3Bucket, cfg.Blob.S3Prefix)
		if err != nil {
			_ = a.closer(ctx)
			return nil, err
		}
		blobs = s3Blobs
	case config.DriverMemory:
		blobs = repository.NewMemoryBlobs()
	}

	var mailer helpers.Mailer = helpers.LogMailer{Logger: logger}
	if cfg.Mail.Driver == config.DriverSES {
		ses, err := helpers.NewSESMailer(ctx, cfg.Mail.Region, cfg.Mail.From)
		if err != nil {
			_ = a.closer(ctx)
			return nil, err
		}
		mailer = ses
	}

	a.hub = services.NewRealtimeHub(logger)
	a.svc = services.New(services.Deps{
		Store:    store,
		Blobs:    blobs,
		Clock:    helpers.SystemClock{},
		Logger:   logger,
		Mailer:   mailer,
		Notifier: a.hub,
		Options: services.Options{
			StoreTimeout:     cfg.Mongo.Timeout,
			TokenTTL:         cfg.Auth.TokenTTL,
			ResetTTL:         cfg.Auth.ResetTTL,
			SeedDemoData:     cfg.Auth.SeedDemoData,
			ExposeResetToken: cfg.Server.Mode == gin.DebugMode,
		},
	})
	return a, nil
}
