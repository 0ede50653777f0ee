package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Backend names accepted by Factory.
const (
	BackendSession  = "session"
	BackendDatabase = "database"
	BackendRedis    = "redis"
)

// Factory builds the Storage for the visitor behind a request context.
type Factory struct {
	Backend  string
	Sessions *scs.SessionManager
	Database *gorm.DB
	Redis    redis.Cmdable
	RedisTTL time.Duration
}

// For returns the visitor's Storage. Session storage needs only the session;
// database and redis storage are scoped by the visitor profile id.
func (f Factory) For(ctx context.Context) (Storage, error) {
	switch f.backend() {
	case BackendSession:
		return NewSession(f.Sessions), nil
	case BackendDatabase:
		profile, err := Profile(ctx, f.Sessions)
		if err != nil {
			return nil, err
		}
		return NewDatabase(f.Database, profile), nil
	case BackendRedis:
		profile, err := Profile(ctx, f.Sessions)
		if err != nil {
			return nil, err
		}
		return NewRedis(f.Redis, profile, f.RedisTTL), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", f.Backend)
	}
}

// Peek returns the visitor's Storage for read-only use and never writes the
// session. A visitor without a profile has nothing stored yet and gets an
// empty Memory.
func (f Factory) Peek(ctx context.Context) (Storage, error) {
	backend := f.backend()
	if backend != BackendDatabase && backend != BackendRedis {
		return f.For(ctx)
	}
	if _, ok := LookupProfile(ctx, f.Sessions); !ok {
		return NewMemory(nil), nil
	}
	return f.For(ctx)
}

func (f Factory) backend() string {
	backend := strings.ToLower(strings.TrimSpace(f.Backend))
	if backend == "" {
		return BackendSession
	}
	return backend
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendSession, BackendDatabase, BackendRedis:
		return true
	default:
		return false
	}
}
