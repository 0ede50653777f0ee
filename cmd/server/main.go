package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/db"
	"folio/internal/db/mock"
	applog "folio/internal/log"
	"folio/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	closeDatabaseFunc   = db.Close
	loadContentFunc     = content.Load
	inspectResumeFunc   = content.InspectResume
	newRedisFunc        = newRedisClient
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	siteContent, err := loadContentFunc(cfg.Content.Path)
	if err != nil {
		applog.Error(ctx, "failed to load site content", "path", cfg.Content.Path, "error", err)
		return 1
	}

	resume, err := inspectResumeFunc(cfg.Content.ResumePath)
	if err != nil {
		// The page shows the resume as unavailable instead.
		applog.Warn(ctx, "resume could not be read", "path", cfg.Content.ResumePath, "error", err)
	}
	applog.Debug(ctx, "resume inspected", "available", resume.Available(), "pages", resume.Pages)

	storageCfg := server.StorageConfig{Backend: cfg.Storage.Backend}
	switch cfg.Storage.Backend {
	case config.StorageDatabase:
		database, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			applog.Error(ctx, "failed to configure database", "error", err)
			return 1
		}
		defer func() {
			if err := closeDatabaseFunc(database); err != nil {
				applog.Warn(ctx, "failed to close database", "error", err)
			}
		}()
		storageCfg.Database = database
	case config.StorageRedis:
		client := newRedisFunc(ctx, cfg.Redis)
		defer func() {
			if err := client.Close(); err != nil {
				applog.Warn(ctx, "failed to close redis client", "error", err)
			}
		}()
		storageCfg.Redis = client
		storageCfg.RedisTTL = cfg.Redis.TTL
	}

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Auth.Session.Lifetime,
			CookieName:   cfg.Auth.Session.CookieName,
			CookieDomain: cfg.Auth.Session.CookieDomain,
			CookieSecure: cfg.Auth.Session.CookieSecure,
		},
		Storage: storageCfg,
		Contact: server.ContactConfig{
			Relay:      buildRelay(cfg.Relay),
			ServiceID:  cfg.Relay.EmailJS.ServiceID,
			TemplateID: cfg.Relay.EmailJS.TemplateID,
		},
		Content: siteContent,
		Resume:  resume,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, stopSignals := subscribeShutdownSig()
	defer stopSignals()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr, "storage", cfg.Storage.Backend, "relay", cfg.Relay.Kind)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		applog.Error(ctx, "server stopped before shutdown was requested", "error", err)
		return 1
	case sig := <-sigCh:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	}

	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server exited with error", "error", err)
		return 1
	}
	applog.Info(ctx, "http server stopped")
	return 0
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		return newMockDatabaseFunc(ctx)
	}
	return configureDatabase(cfg)
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// Visitors fall back to defaults until redis answers.
		applog.Warn(ctx, "redis not reachable at startup", "addr", cfg.Addr, "error", err)
	}
	return client
}

func buildRelay(cfg config.RelayConfig) contact.Relay {
	switch cfg.Kind {
	case config.RelaySMTP:
		return &contact.SMTPRelay{
			Host:     cfg.SMTP.Host,
			Port:     strconv.Itoa(cfg.SMTP.Port),
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			To:       cfg.SMTP.To,
		}
	case config.RelayEmailJS:
		return &contact.EmailJSRelay{
			Endpoint:   cfg.EmailJS.Endpoint,
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
		}
	default:
		return contact.LogRelay{}
	}
}
