package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/handlers"
	applog "folio/internal/log"
	"folio/internal/storage"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr    string
	Session SessionConfig
	Storage StorageConfig
	Contact ContactConfig
	Content *content.Content
	Resume  content.ResumeInfo
}

// SessionConfig controls session behavior for the HTTP server.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// StorageConfig selects the visitor storage backend and its connections.
type StorageConfig struct {
	Backend  string
	Database *gorm.DB
	Redis    redis.Cmdable
	RedisTTL time.Duration
}

// ContactConfig controls contact form delivery.
type ContactConfig struct {
	Relay       contact.Relay
	ServiceID   string
	TemplateID  string
	RevertAfter time.Duration
}

// Server wraps an http.Server and exposes helpers for bootstrapping a
// production-ready web service.
type Server struct {
	config     Config
	httpServer *http.Server
	forms      *contact.Forms
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"sessionLifetime", cfg.Session.Lifetime.String(),
		"sessionCookie", cfg.Session.CookieName,
		"storage", cfg.Storage.Backend,
	)

	sessionCfg := cfg.Session
	if sessionCfg.Lifetime <= 0 {
		applog.Debug(context.Background(), "session lifetime not provided, using default")
		sessionCfg.Lifetime = 720 * time.Hour
	}
	if strings.TrimSpace(sessionCfg.CookieName) == "" {
		applog.Debug(context.Background(), "session cookie name not provided, using default")
		sessionCfg.CookieName = "folio_session"
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = sessionCfg.Lifetime
	sessionManager.Cookie.Name = sessionCfg.CookieName
	sessionManager.Cookie.Domain = sessionCfg.CookieDomain
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = sessionCfg.CookieSecure

	applog.Debug(context.Background(), "session manager configured",
		"cookieName", sessionCfg.CookieName,
		"cookieDomain", sessionCfg.CookieDomain,
		"cookieSecure", sessionCfg.CookieSecure,
	)

	relay := cfg.Contact.Relay
	if relay == nil {
		applog.Debug(context.Background(), "contact relay not provided, logging messages")
		relay = contact.LogRelay{}
	}
	formOpts := []contact.Option{contact.WithTemplate(cfg.Contact.ServiceID, cfg.Contact.TemplateID)}
	if cfg.Contact.RevertAfter > 0 {
		formOpts = append(formOpts, contact.WithRevertAfter(cfg.Contact.RevertAfter))
	}
	forms := contact.NewForms(func() *contact.Form {
		return contact.NewForm(relay, formOpts...)
	})

	siteContent := cfg.Content
	if siteContent == nil {
		siteContent = content.Default()
	}

	handlers.Configure(handlers.Dependencies{
		Sessions: sessionManager,
		Storage: storage.Factory{
			Backend:  cfg.Storage.Backend,
			Sessions: sessionManager,
			Database: cfg.Storage.Database,
			Redis:    cfg.Storage.Redis,
			RedisTTL: cfg.Storage.RedisTTL,
		},
		Content: siteContent,
		Forms:   forms,
		Resume:  cfg.Resume,
	})

	applog.Debug(context.Background(), "handler dependencies configured")

	handler := sessionManager.LoadAndSave(newRouter())

	applog.Debug(context.Background(), "http handler chain prepared")

	return &Server{
		config: cfg,
		forms:  forms,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout and stops the
// pending contact form timers.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	err := s.httpServer.Shutdown(ctx)
	s.forms.Close()
	return err
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	applog.Debug(context.Background(), "server handler requested")
	return s.httpServer.Handler
}
