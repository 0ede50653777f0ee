package storage

import (
	"context"
	"fmt"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix  = "folio:"
	sessionProfileKey = "folio:profile"
)

// Session keeps values in the visitor's scs session, so a browser profile
// that keeps its cookie keeps its state.
type Session struct {
	manager *scs.SessionManager
}

// NewSession wraps an scs session manager. The request context passed to
// each call must have been loaded by the manager's LoadAndSave middleware.
func NewSession(manager *scs.SessionManager) *Session {
	return &Session{manager: manager}
}

func (s *Session) Get(ctx context.Context, key string) (value string, found bool, err error) {
	if s == nil || s.manager == nil {
		return "", false, ErrUnavailable
	}
	defer recoverUnloaded(&err)

	k := sessionKeyPrefix + key
	if !s.manager.Exists(ctx, k) {
		return "", false, nil
	}
	return s.manager.GetString(ctx, k), true, nil
}

func (s *Session) Set(ctx context.Context, key, value string) (err error) {
	if s == nil || s.manager == nil {
		return ErrUnavailable
	}
	defer recoverUnloaded(&err)

	s.manager.Put(ctx, sessionKeyPrefix+key, value)
	return nil
}

func (s *Session) Delete(ctx context.Context, key string) (err error) {
	if s == nil || s.manager == nil {
		return ErrUnavailable
	}
	defer recoverUnloaded(&err)

	s.manager.Remove(ctx, sessionKeyPrefix+key)
	return nil
}

// Profile returns the visitor profile id stored in the session, assigning a
// new one on first use. Database and Redis storage are scoped by it.
func Profile(ctx context.Context, manager *scs.SessionManager) (profile string, err error) {
	if manager == nil {
		return "", ErrUnavailable
	}
	defer recoverUnloaded(&err)

	profile = manager.GetString(ctx, sessionProfileKey)
	if profile != "" {
		return profile, nil
	}
	profile = uuid.NewString()
	manager.Put(ctx, sessionProfileKey, profile)
	return profile, nil
}

// LookupProfile returns the visitor profile id if one was assigned already.
func LookupProfile(ctx context.Context, manager *scs.SessionManager) (profile string, ok bool) {
	if manager == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			profile, ok = "", false
		}
	}()

	profile = manager.GetString(ctx, sessionProfileKey)
	return profile, profile != ""
}

// scs panics when the context carries no session data.
func recoverUnloaded(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrUnavailable, r)
	}
}
