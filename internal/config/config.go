package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	StorageSession  = "session"
	StorageDatabase = "database"
	StorageRedis    = "redis"
)

// Relay kinds accepted in RELAY_KIND.
const (
	RelayLog     = "log"
	RelaySMTP    = "smtp"
	RelayEmailJS = "emailjs"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Relay    RelayConfig
	Content  ContentConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	UseMock         bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// AuthConfig groups the visitor session settings. Visitors are anonymous;
// the session only identifies a browser profile.
type AuthConfig struct {
	Session SessionConfig
}

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// StorageConfig selects where visitor preferences are kept.
type StorageConfig struct {
	Backend string
}

// RedisConfig contains the redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RelayConfig selects how contact messages are delivered.
type RelayConfig struct {
	Kind    string
	SMTP    SMTPConfig
	EmailJS EmailJSConfig
}

// SMTPConfig configures the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// EmailJSConfig configures the EmailJS relay.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Endpoint   string
}

// ContentConfig points at optional files overriding the built-in content.
type ContentConfig struct {
	Path       string
	ResumePath string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			portAddr(os.Getenv("PORT")),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	cfg.Auth = AuthConfig{
		Session: SessionConfig{
			Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 720*time.Hour),
			CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "folio_session"),
			CookieDomain: strings.TrimSpace(os.Getenv("SESSION_COOKIE_DOMAIN")),
			CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
		},
	}

	cfg.Storage = StorageConfig{
		Backend: strings.ToLower(firstNonEmpty(os.Getenv("STORAGE_BACKEND"), StorageSession)),
	}

	cfg.Redis = RedisConfig{
		Addr:     firstNonEmpty(os.Getenv("REDIS_ADDR"), "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       parseIntWithDefault(os.Getenv("REDIS_DB"), 0),
		TTL:      parseDurationWithDefault(os.Getenv("REDIS_TTL"), 0),
	}

	cfg.Relay = RelayConfig{
		Kind: strings.ToLower(firstNonEmpty(os.Getenv("RELAY_KIND"), RelayLog)),
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:     parseIntWithDefault(os.Getenv("SMTP_PORT"), 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       strings.TrimSpace(os.Getenv("CONTACT_TO")),
		},
		EmailJS: EmailJSConfig{
			ServiceID:  strings.TrimSpace(os.Getenv("EMAILJS_SERVICE_ID")),
			TemplateID: strings.TrimSpace(os.Getenv("EMAILJS_TEMPLATE_ID")),
			PublicKey:  strings.TrimSpace(os.Getenv("EMAILJS_PUBLIC_KEY")),
			Endpoint:   strings.TrimSpace(os.Getenv("EMAILJS_ENDPOINT")),
		},
	}

	cfg.Content = ContentConfig{
		Path:       strings.TrimSpace(os.Getenv("CONTENT_PATH")),
		ResumePath: strings.TrimSpace(os.Getenv("RESUME_PATH")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server address must not be empty")
	}

	switch c.Storage.Backend {
	case StorageSession, StorageRedis:
	case StorageDatabase:
		if strings.TrimSpace(c.Database.URL) == "" && !c.Database.UseMock {
			return fmt.Errorf("database storage requires DATABASE_URL or DATABASE_USE_MOCK")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Relay.Kind {
	case RelayLog, RelaySMTP, RelayEmailJS:
	default:
		return fmt.Errorf("unknown relay kind %q", c.Relay.Kind)
	}

	return nil
}

func portAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ""
	}
	return ":" + port
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}
